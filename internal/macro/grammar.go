package macro

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes one macro line. Identifiers may contain hyphens so that
// combatant ids like cb-goblin-2 need no quoting.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Punct", Pattern: `[:]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Statement is one macro line.
type Statement struct {
	Apply      *ApplyStmt      `parser:"( @@"`
	Remove     *RemoveStmt     `parser:"| @@"`
	Adjust     *AdjustStmt     `parser:"| @@"`
	Tier       *TierStmt       `parser:"| @@"`
	Conditions *ConditionsStmt `parser:"| @@"`
	Spend      *SpendStmt      `parser:"| @@"`
	Reset      *ResetStmt      `parser:"| @@"`
	State      *StateStmt      `parser:"| @@ )"`
}

// ApplyStmt: apply <condition> [tier] to: <actor>
type ApplyStmt struct {
	Condition string `parser:"\"apply\" @Ident"`
	Tier      *int   `parser:"@Int?"`
	Actor     string `parser:"\"to\" \":\" @Ident"`
}

// RemoveStmt: remove <condition> from: <actor>
type RemoveStmt struct {
	Condition string `parser:"\"remove\" @Ident"`
	Actor     string `parser:"\"from\" \":\" @Ident"`
}

// AdjustStmt: adjust <condition> <delta> on: <actor>
type AdjustStmt struct {
	Condition string `parser:"\"adjust\" @Ident"`
	Delta     int    `parser:"@Int"`
	Actor     string `parser:"\"on\" \":\" @Ident"`
}

// TierStmt: tier <condition> of: <actor>
type TierStmt struct {
	Condition string `parser:"\"tier\" @Ident"`
	Actor     string `parser:"\"of\" \":\" @Ident"`
}

// ConditionsStmt: conditions of: <actor>
type ConditionsStmt struct {
	Actor string `parser:"\"conditions\" \"of\" \":\" @Ident"`
}

// SpendStmt: spend action|actions|reaction [count] by: <combatant>
type SpendStmt struct {
	What      string `parser:"\"spend\" @(\"actions\"|\"action\"|\"reaction\")"`
	Count     *int   `parser:"@Int?"`
	Combatant string `parser:"\"by\" \":\" @Ident"`
}

// ResetStmt: reset <combatant>
type ResetStmt struct {
	Combatant string `parser:"\"reset\" @Ident"`
}

// StateStmt: state <combatant>
type StateStmt struct {
	Combatant string `parser:"\"state\" @Ident"`
}

// Build creates the statement parser from the struct tags above.
func Build() *participle.Parser[Statement] {
	return participle.MustBuild[Statement](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}
