package parser

import "github.com/cloudcmds/tsfront/internal/token"

// Precedence order for operators, lowest first.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = += ||= etc., right-associative
	NULLISH     // ??
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_AND     // &
	EQUALS      // == === != !==
	RELATIONAL  // < <= > >= instanceof in
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
	POWER       // **, right-associative
	PREFIX      // -X !X typeof X
	CALL        // f(X) a.b a[i]
)

// Precedences for each token type
var precedences = map[token.Type]int{
	token.NULLISH:   NULLISH,
	token.OR:        LOGICAL_OR,
	token.AND:       LOGICAL_AND,
	token.BITOR:     BIT_OR,
	token.CARET:     BIT_XOR,
	token.AMPERSAND: BIT_AND,
	token.EQ:        EQUALS,
	token.STRICT_EQ: EQUALS,
	token.NOT_EQ:    EQUALS,
	token.STRICT_NE: EQUALS,
	token.LT:        RELATIONAL,
	token.LT_EQUALS: RELATIONAL,
	token.GT:        RELATIONAL,
	token.GT_EQUALS: RELATIONAL,
	token.LT_LT:     SHIFT,
	token.GT_GT:     SHIFT,
	token.GT_GT_GT:  SHIFT,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.ASTERISK:  PRODUCT,
	token.SLASH:     PRODUCT,
	token.MOD:       PRODUCT,
	token.POW:       POWER,
	token.LPAREN:    CALL,
	token.PERIOD:    CALL,
	token.LBRACKET:  CALL,
}

// Binary operators spelled as words. The lexer produces these as
// identifiers.
var keywordPrecedences = map[string]int{
	"in":         RELATIONAL,
	"instanceof": RELATIONAL,
}

// binaryOperators are the token types parsed by parseBinary.
var binaryOperators = []token.Type{
	token.NULLISH, token.OR, token.AND, token.BITOR, token.CARET,
	token.AMPERSAND, token.EQ, token.STRICT_EQ, token.NOT_EQ, token.STRICT_NE,
	token.LT, token.LT_EQUALS, token.GT, token.GT_EQUALS, token.LT_LT,
	token.GT_GT, token.GT_GT_GT, token.PLUS, token.MINUS, token.ASTERISK,
	token.SLASH, token.MOD, token.POW,
}

// assignmentOperators are "=" and the compound assignment operators.
var assignmentOperators = []token.Type{
	token.ASSIGN, token.PLUS_EQUALS, token.MINUS_EQUALS, token.ASTERISK_EQUALS,
	token.SLASH_EQUALS, token.MOD_EQUALS, token.CARET_EQUALS, token.AMP_EQUALS,
	token.BITOR_EQUALS, token.GT_GT_EQUALS, token.GT_GT_GT_EQ, token.LT_LT_EQUALS,
	token.POW_EQUALS, token.AND_EQUALS, token.OR_EQUALS, token.NULLISH_EQUAL,
}

func init() {
	for _, t := range assignmentOperators {
		precedences[t] = ASSIGN
	}
}

// rightAssociative operators bind their right operand at one level lower,
// so that a chain groups from the right.
func rightAssociative(prec int) bool {
	return prec == ASSIGN || prec == POWER
}

// tokenPrecedence returns the binding power of tok as an infix operator.
func tokenPrecedence(tok token.Token) int {
	if tok.Type == token.IDENT {
		if prec, ok := keywordPrecedences[tok.Literal]; ok {
			return prec
		}
		return LOWEST
	}
	if prec, ok := precedences[tok.Type]; ok {
		return prec
	}
	return LOWEST
}

// peekPrecedence returns the precedence of the next token.
func (p *Parser) peekPrecedence() int {
	return tokenPrecedence(p.peekToken)
}

// currentPrecedence returns the precedence of the current token.
func (p *Parser) currentPrecedence() int {
	return tokenPrecedence(p.curToken)
}
