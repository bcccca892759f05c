package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func swap(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errb bytes.Buffer
	oldOut, oldErr := Out, Err
	Out, Err = &out, &errb
	t.Cleanup(func() { Out, Err = oldOut, oldErr })
	return &out, &errb
}

func TestHelpers(t *testing.T) {
	out, errb := swap(t)
	Printf("%d-%s\n", 1, "a")
	Eprintf("e%d", 2)
	Eprintln("", "x")
	Eprint("%raw")
	assert.Equal(t, "1-a\n", out.String())
	assert.Equal(t, "e2 x\n%raw", errb.String())
}

func TestStream(t *testing.T) {
	out, errb := swap(t)
	assert.Same(t, errb, Stream("stderr"))
	assert.Same(t, out, Stream("stdout"))
	assert.Same(t, out, Stream(""))
}
