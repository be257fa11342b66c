package syntax

// Kind is the closed set of constructs a concrete syntax tree can contain.
type Kind uint8

const (
	// Other is the catch-all for kinds this package does not model.
	Other Kind = iota

	// Leaves.
	Token
	LineComment
	BlockComment

	// Error marks a region the parser could not understand.
	Error

	SourceFile
	UseStatement
	ActorDefinition
	ClassDefinition
	TraitDefinition
	InterfaceDefinition
	PrimitiveDefinition
	StructDefinition
	TypeAlias
	Members
	Docstring
	Field
	Constructor
	Method
	Behavior
	Parameters
	Parameter
	Arguments
	TypeParameters
	TypeArguments
	BaseType
	UnionType
	TupleType
	Block
	IfStatement
	ElseifClause
	ElseClause
	ThenClause
	WhileStatement
	ForStatement
	MatchStatement
	MatchCase
	TryStatement
	RepeatStatement
	RecoverExpression
	ObjectLiteral
	LambdaExpression
	CallExpression
	MemberExpression
	AssignmentExpression
	VariableDeclaration
	BinaryExpression
	UnaryExpression
	ParenExpression
	ArrayLiteral
	JumpStatement
	ConsumeExpression

	kindCount
)

var kindNames = [...]string{
	Other:                "other",
	Token:                "token",
	LineComment:          "line_comment",
	BlockComment:         "block_comment",
	Error:                "ERROR",
	SourceFile:           "source_file",
	UseStatement:         "use_statement",
	ActorDefinition:      "actor_definition",
	ClassDefinition:      "class_definition",
	TraitDefinition:      "trait_definition",
	InterfaceDefinition:  "interface_definition",
	PrimitiveDefinition:  "primitive_definition",
	StructDefinition:     "struct_definition",
	TypeAlias:            "type_alias",
	Members:              "members",
	Docstring:            "docstring",
	Field:                "field",
	Constructor:          "constructor",
	Method:               "method",
	Behavior:             "behavior",
	Parameters:           "parameters",
	Parameter:            "parameter",
	Arguments:            "arguments",
	TypeParameters:       "type_parameters",
	TypeArguments:        "type_arguments",
	BaseType:             "base_type",
	UnionType:            "union_type",
	TupleType:            "tuple_type",
	Block:                "block",
	IfStatement:          "if_statement",
	ElseifClause:         "elseif_clause",
	ElseClause:           "else_clause",
	ThenClause:           "then_clause",
	WhileStatement:       "while_statement",
	ForStatement:         "for_statement",
	MatchStatement:       "match_statement",
	MatchCase:            "match_case",
	TryStatement:         "try_statement",
	RepeatStatement:      "repeat_statement",
	RecoverExpression:    "recover_expression",
	ObjectLiteral:        "object_literal",
	LambdaExpression:     "lambda_expression",
	CallExpression:       "call_expression",
	MemberExpression:     "member_expression",
	AssignmentExpression: "assignment_expression",
	VariableDeclaration:  "variable_declaration",
	BinaryExpression:     "binary_expression",
	UnaryExpression:      "unary_expression",
	ParenExpression:      "paren_expression",
	ArrayLiteral:         "array_literal",
	JumpStatement:        "jump_statement",
	ConsumeExpression:    "consume_expression",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "other"
}

// IsLeafKind reports whether nodes of kind k stand for a single token.
func (k Kind) IsLeafKind() bool {
	return k == Token || k == LineComment || k == BlockComment
}

// IsTypeDefinition reports whether k introduces a named type with members.
func (k Kind) IsTypeDefinition() bool {
	switch k {
	case ActorDefinition, ClassDefinition, TraitDefinition, InterfaceDefinition,
		PrimitiveDefinition, StructDefinition:
		return true
	}
	return false
}

// IsMethod reports whether k is one of the method member kinds.
func (k Kind) IsMethod() bool {
	return k == Constructor || k == Method || k == Behavior
}
