/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package template

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar (EBNF):
//
//	template = item { "," item } .
//	item     = String | elem .
//	elem     = Ident [ "<" arg { "," arg } ">" ] .
//	arg      = Char | Int | elem .

var templateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])'`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[<>,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type templateNode struct {
	Items []*itemNode `parser:"@@ ( ',':Punct @@ )*"`
}

type itemNode struct {
	Pos lexer.Position

	Literal *string   `parser:"  @String"`
	Elem    *elemNode `parser:"| @@"`
}

type elemNode struct {
	Pos lexer.Position

	Name string     `parser:"@Ident"`
	Args []*argNode `parser:"( '<':Punct @@ ( ',':Punct @@ )* '>':Punct )?"`
}

type argNode struct {
	Pos lexer.Position

	Char *string   `parser:"  @Char"`
	Int  *int      `parser:"| @Int"`
	Elem *elemNode `parser:"| @@"`
}

var grammar = participle.MustBuild[templateNode](
	participle.Lexer(templateLexer),
	participle.Unquote("String", "Char"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
