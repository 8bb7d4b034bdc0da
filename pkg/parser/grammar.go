// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/go-ccfe/ccfe/pkg/ast"
	"github.com/go-ccfe/ccfe/pkg/token"
)

// This file implements every production in spec.md §4.3's grammar, one
// function per non-terminal, in the order the grammar lists them; the
// single-token preprocessor_directive is matched inline in
// parseTopLevelDecl.

// program := top_level_decl*
func (p *Parser) parseProgram() *ast.Node {
	root := ast.New(ast.Program, "", 1)
	for p.peek().Class != token.EOF {
		root.Append(p.parseTopLevelDecl())
	}
	return root
}

// top_level_decl := preprocessor_directive | declaration_or_function
func (p *Parser) parseTopLevelDecl() *ast.Node {
	t := p.peek()
	if t.Class == token.PreprocessorDirective {
		p.advance()
		return ast.New(ast.PreprocessorDirective, t.Value, t.Line)
	}
	if !isTypeKeyword(t) {
		p.errorf("expected a preprocessor directive or a declaration, got %s %q", t.Class, t.Value)
	}
	return p.parseDeclarationOrFunction()
}

// declaration_or_function resolves the only real ambiguity in the
// grammar by looking at lookahead(2): a "(" two tokens past the type
// keyword means a function; anything else means a variable declaration.
// A "const"-prefixed declaration can never reach the function branch,
// since function_or_prototype has no const prefix — lookahead(2) for a
// const declaration is always the declarator name, never "(".
func (p *Parser) parseDeclarationOrFunction() *ast.Node {
	if p.lookahead(2).Value == "(" {
		return p.parseFunctionOrPrototype()
	}
	return p.parseVariableDeclaration()
}

// function_or_prototype := type_kw IDENT "(" ")" ( block_statement | ";" )
func (p *Parser) parseFunctionOrPrototype() *ast.Node {
	typeTok := p.matchType()
	typeNode := ast.New(ast.TypeSpecifier, typeTok.Value, typeTok.Line)
	name := p.match(token.Identifier, "")
	p.matchSpecial("(")
	p.matchSpecial(")")

	if p.peek().Value == "{" {
		body := p.parseBlockStatement()
		fn := ast.New(ast.FunctionDefinition, name.Value, typeTok.Line)
		fn.Append(typeNode, body)
		return fn
	}
	p.matchSpecial(";")
	proto := ast.New(ast.FunctionPrototype, name.Value, typeTok.Line)
	proto.Append(typeNode)
	return proto
}

// variable_declaration := ["const"] type_kw declarator ("," declarator)* ";"
func (p *Parser) parseVariableDeclaration() *ast.Node {
	line := p.peek().Line
	node := ast.New(ast.VariableDeclarationStatement, "", line)

	if p.peek().Value == "const" {
		kw := p.matchKeyword("const")
		node.Append(ast.New(ast.KeywordNode, "const", kw.Line))
	}
	typeTok := p.matchType()
	node.Append(ast.New(ast.TypeSpecifier, typeTok.Value, typeTok.Line))

	node.Append(p.parseDeclarator())
	for p.peek().Value == "," {
		p.advance()
		node.Append(p.parseDeclarator())
	}
	p.matchSpecial(";")
	return node
}

// declarator := IDENT ["=" expression]
func (p *Parser) parseDeclarator() *ast.Node {
	name := p.match(token.Identifier, "")
	decl := ast.New(ast.Declarator, name.Value, name.Line)
	if p.peek().Class == token.Operator && p.peek().Value == "=" {
		eq := p.advance()
		init := ast.New(ast.Initializer, "", eq.Line)
		init.Append(p.parseExpression())
		decl.Append(init)
	}
	return decl
}

// statement := if_statement | for_statement | return_statement
//            | block_statement | ";"
//            | variable_declaration (* when peek is a type kw *)
//            | expression_statement
func (p *Parser) parseStatement() *ast.Node {
	t := p.peek()
	switch {
	case t.Class == token.Keyword && t.Value == "if":
		return p.parseIfStatement()
	case t.Class == token.Keyword && t.Value == "for":
		return p.parseForStatement()
	case t.Class == token.Keyword && t.Value == "return":
		return p.parseReturnStatement()
	case t.Value == "{":
		return p.parseBlockStatement()
	case t.Value == ";":
		p.advance()
		return ast.New(ast.EmptyStatement, "", t.Line)
	case isTypeKeyword(t):
		return p.parseVariableDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

// block_statement := "{" statement* "}"
func (p *Parser) parseBlockStatement() *ast.Node {
	open := p.matchSpecial("{")
	node := ast.New(ast.BlockStatement, "", open.Line)
	for p.peek().Value != "}" {
		if p.peek().Class == token.EOF {
			p.errorf("unexpected end of file, expected '}'")
		}
		node.Append(p.parseStatement())
	}
	p.matchSpecial("}")
	return node
}

// if_statement := "if" "(" expression ")" statement ["else" statement]
func (p *Parser) parseIfStatement() *ast.Node {
	kw := p.matchKeyword("if")
	p.matchSpecial("(")
	cond := p.parseExpression()
	p.matchSpecial(")")
	then := p.parseStatement()

	node := ast.New(ast.IfStatement, "", kw.Line)
	node.Append(cond, then)
	if p.peek().Class == token.Keyword && p.peek().Value == "else" {
		p.advance()
		node.Append(p.parseStatement())
	}
	return node
}

// for_statement := "for" "(" for_init for_cond for_incr ")" statement
//
// The child order is always exactly four: initializer, condition,
// increment, body. An empty condition or increment slot is filled with
// an Empty node carrying the slot name as its value (spec.md §4.3
// "Tree shape").
func (p *Parser) parseForStatement() *ast.Node {
	kw := p.matchKeyword("for")
	p.matchSpecial("(")

	init := p.parseForInit()
	cond := p.parseForCond()
	incr := p.parseForIncr()

	p.matchSpecial(")")
	body := p.parseStatement()

	node := ast.New(ast.ForStatement, "", kw.Line)
	node.Append(init, cond, incr, body)
	return node
}

// for_init := ";" | variable_declaration | expression_statement
func (p *Parser) parseForInit() *ast.Node {
	switch t := p.peek(); {
	case t.Value == ";":
		p.advance()
		return ast.New(ast.Empty, "initializer", t.Line)
	case isTypeKeyword(t):
		return p.parseVariableDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

// for_cond := ";" | expression ";"
func (p *Parser) parseForCond() *ast.Node {
	if t := p.peek(); t.Value == ";" {
		p.advance()
		return ast.New(ast.Empty, "condition", t.Line)
	}
	cond := p.parseExpression()
	p.matchSpecial(";")
	return cond
}

// for_incr := ε | expression
func (p *Parser) parseForIncr() *ast.Node {
	if t := p.peek(); t.Value == ")" {
		return ast.New(ast.Empty, "increment", t.Line)
	}
	return p.parseExpression()
}

// return_statement := "return" [expression] ";"
func (p *Parser) parseReturnStatement() *ast.Node {
	kw := p.matchKeyword("return")
	node := ast.New(ast.ReturnStatement, "", kw.Line)
	if p.peek().Value != ";" {
		node.Append(p.parseExpression())
	}
	p.matchSpecial(";")
	return node
}

// expression_statement := expression ";"
func (p *Parser) parseExpressionStatement() *ast.Node {
	expr := p.parseExpression()
	node := ast.New(ast.ExpressionStatement, "", expr.Line)
	node.Append(expr)
	p.matchSpecial(";")
	return node
}

// expression := assignment
func (p *Parser) parseExpression() *ast.Node { return p.parseAssignment() }

// assignment := equality ("=" assignment)?  (* right-associative *)
func (p *Parser) parseAssignment() *ast.Node {
	left := p.parseEquality()
	if t := p.peek(); t.Class == token.Operator && t.Value == "=" {
		eq := p.advance()
		right := p.parseAssignment()
		node := ast.New(ast.AssignmentExpression, eq.Value, eq.Line)
		node.Append(left, right)
		return node
	}
	return left
}

// equality := relational (("=="|"!=") relational)*
func (p *Parser) parseEquality() *ast.Node {
	left := p.parseRelational()
	for {
		t := p.peek()
		if t.Class != token.Operator || (t.Value != "==" && t.Value != "!=") {
			return left
		}
		op := p.advance()
		right := p.parseRelational()
		node := ast.New(ast.BinaryExpression, op.Value, op.Line)
		node.Append(left, right)
		left = node
	}
}

// relational := additive (("<"|">"|"<="|">=") additive)*
func (p *Parser) parseRelational() *ast.Node {
	left := p.parseAdditive()
	for {
		t := p.peek()
		switch {
		case t.Class != token.Operator:
			return left
		case t.Value == "<" || t.Value == ">" || t.Value == "<=" || t.Value == ">=":
			op := p.advance()
			right := p.parseAdditive()
			node := ast.New(ast.BinaryExpression, op.Value, op.Line)
			node.Append(left, right)
			left = node
		default:
			return left
		}
	}
}

// additive := multiplicative (("+"|"-") multiplicative)*
func (p *Parser) parseAdditive() *ast.Node {
	left := p.parseMultiplicative()
	for {
		t := p.peek()
		if t.Class != token.Operator || (t.Value != "+" && t.Value != "-") {
			return left
		}
		op := p.advance()
		right := p.parseMultiplicative()
		node := ast.New(ast.BinaryExpression, op.Value, op.Line)
		node.Append(left, right)
		left = node
	}
}

// multiplicative := primary (("*"|"/") primary)*
func (p *Parser) parseMultiplicative() *ast.Node {
	left := p.parsePrimary()
	for {
		t := p.peek()
		if t.Class != token.Operator || (t.Value != "*" && t.Value != "/") {
			return left
		}
		op := p.advance()
		right := p.parsePrimary()
		node := ast.New(ast.BinaryExpression, op.Value, op.Line)
		node.Append(left, right)
		left = node
	}
}

// primary := NUMERIC_CONSTANT | IDENT | "(" expression ")"
func (p *Parser) parsePrimary() *ast.Node {
	t := p.peek()
	switch {
	case t.Class == token.NumericConstant:
		p.advance()
		return ast.New(ast.Constant, t.Value, t.Line)
	case t.Class == token.Identifier:
		p.advance()
		return ast.New(ast.Identifier, t.Value, t.Line)
	case t.Value == "(":
		p.advance()
		expr := p.parseExpression()
		p.matchSpecial(")")
		return expr
	default:
		p.errorf("unexpected token %s %q in expression", t.Class, t.Value)
		return nil // unreachable: errorf never returns
	}
}
