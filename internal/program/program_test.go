package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestProgram_Instructions(t *testing.T) {
	app := New(6)
	assert.Equal(t, 0, app.Instructions())

	app.Add(Offset{Address: 0, Data: []byte{0x89, 0xD9}, Type: CodeOffset, Code: "mov cx, bx"})
	app.Add(Offset{Address: 2, Data: []byte{0x90}, Type: DataOffset | Unsupported})
	app.Add(Offset{Address: 3, Data: []byte{0xA1, 0xFB, 0x09}, Type: CodeOffset, Code: "mov ax, [2555]"})

	assert.Equal(t, 3, len(app.Offsets))
	assert.Equal(t, 2, app.Instructions())
	assert.Equal(t, 6, app.Size)
}
