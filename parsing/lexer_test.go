package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexOperatorsAndIdentifiers(t *testing.T) {
	tokens := NewLexer("Y = A.B + !C * 1;").Lex()

	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{
		TokenIdent, TokenAssign, TokenIdent, TokenAnd, TokenIdent,
		TokenOr, TokenNot, TokenIdent, TokenXor, TokenConstant,
		TokenSemicolon, TokenEOF,
	}, types)
}

func TestLexRejectsInvalidDigitLiteral(t *testing.T) {
	tokens := NewLexer("A = 2").Lex()
	assert.Equal(t, TokenError, tokens[len(tokens)-1].Type)
}

func TestLexRejectsUnknownSymbol(t *testing.T) {
	tokens := NewLexer("A = B & C").Lex()
	assert.Equal(t, TokenError, tokens[len(tokens)-1].Type)
}
