// SPDX-License-Identifier: MIT
//
// File: grammar.go
// Role: participle lexer and grammar of the set-file format.

package storage

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var setLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "Name", Pattern: `:[^:\s]+:`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Absent", Pattern: `-`},
	{Name: "Keyword", Pattern: `[a-z]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

type setFile struct {
	Blocks []*block `parser:"EOL* @@*"`
}

type block struct {
	Name        string `parser:"@Name"`
	Order       *int   `parser:"@Int?"`
	Orientation string `parser:"@(\"directed\" | \"undirected\")? EOL+"`
	Rows        []*row `parser:"@@*"`
}

type row struct {
	Cells []*cell `parser:"@@+ EOL+"`
}

type cell struct {
	Weight *int64 `parser:"  @Int"`
	Absent bool   `parser:"| @Absent"`
}

var setParser = participle.MustBuild[setFile](
	participle.Lexer(setLexer),
	participle.Elide("comment", "whitespace"),
)
