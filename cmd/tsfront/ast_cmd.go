package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/cloudcmds/tsfront"
	"github.com/cloudcmds/tsfront/ast"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the syntax tree for source code",
	Long: `Parse source code and print its syntax tree.

Output formats:
  text    indented tree (default)
  json    nested JSON objects
  sexpr   compact S-expression
  source  the tree printed back as source text`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, code, err := getCode(cmd, args, os.Stdin)
		if err != nil {
			return err
		}
		program, err := parseSource(name, code)
		if err != nil {
			return reportError(os.Stderr, err, !viper.GetBool("no-color") && isTerminal(os.Stderr))
		}
		return renderAST(cmd.OutOrStdout(), program, outputFormat(cmd), useColor())
	},
}

func init() {
	addInputFlags(astCmd)
	astCmd.Flags().StringP("output", "o", "text", "output format: text, json, sexpr or source")
}

// parseSource parses one input using the configured options.
func parseSource(name, code string) (*ast.Program, error) {
	opts := []tsfront.Option{tsfront.WithMaxDepth(viper.GetInt("max-depth"))}
	if name != "" {
		opts = append(opts, tsfront.WithFilename(name))
	}
	start := time.Now()
	program, err := tsfront.Parse(code, opts...)
	event := log.Debug().Str("file", name).Dur("elapsed", time.Since(start))
	if err != nil {
		event.Err(err).Msg("parse failed")
		return nil, err
	}
	event.Int("statements", len(program.Stmts)).Msg("parsed")
	return program, nil
}

func renderAST(w io.Writer, program *ast.Program, format string, colored bool) error {
	switch strings.ToLower(format) {
	case "", "text":
		printTree(w, program, colored)
		return nil
	case "json":
		data, err := getOutputJSON(nodeToJSON(program), colored)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "sexpr":
		_, err := fmt.Fprintln(w, ast.Dump(program))
		return err
	case "source":
		_, err := fmt.Fprintln(w, program.String())
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Line     int        `json:"line,omitempty"`
	Column   int        `json:"column,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *ASTNode {
	result := &ASTNode{Type: nodeType(node), Value: nodeValue(node)}
	if _, isProgram := node.(*ast.Program); !isProgram {
		result.Line = node.Pos().LineNumber()
		result.Column = node.Pos().ColumnNumber()
	}
	if isLeaf(node) {
		return result
	}
	for _, child := range ast.Children(node) {
		result.Children = append(result.Children, nodeToJSON(child))
	}
	return result
}

func nodeType(node ast.Node) string {
	return reflect.TypeOf(node).Elem().Name()
}

// isLeaf reports whether the node is fully described by its value.
func isLeaf(node ast.Node) bool {
	switch node.(type) {
	case *ast.Identifier, *ast.IntegerLiteral, *ast.StringLiteral, *ast.TemplateString, *ast.TypeRef:
		return true
	}
	return false
}

// nodeValue returns the detail shown next to a node's type, or nil.
func nodeValue(node ast.Node) any {
	switch n := node.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.IntegerLiteral:
		return n.Value
	case *ast.StringLiteral, *ast.TemplateString, *ast.TypeRef:
		return n.String()
	case *ast.Unary:
		return n.Op
	case *ast.Binary:
		return n.Op
	case *ast.AugmentedAssignment:
		return n.Op
	case *ast.Assignment:
		return "="
	case *ast.VariableDeclaration:
		return n.Kind
	case *ast.ForIn:
		if n.IsAwait() {
			return "await " + n.Kind + " " + n.Operator
		}
		return n.Kind + " " + n.Operator
	case *ast.FunctionDeclaration:
		if n.Async {
			return "async"
		}
	case *ast.InterfaceDeclaration:
		if n.Exported {
			return "export"
		}
	case *ast.Heritage:
		return n.Keyword
	case *ast.Param:
		if n.Modifier != "" {
			return n.Modifier
		}
	}
	return nil
}

var (
	treeNodeColor    = color.New(color.FgCyan, color.Bold)
	treeLiteralColor = color.New(color.FgGreen)
	treeMutedColor   = color.New(color.FgHiBlack)
)

func printTree(w io.Writer, program *ast.Program, colored bool) {
	paint := func(c *color.Color, s string) string {
		if !colored {
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}
	var printNode func(node ast.Node, indent string, isLast bool)
	printNode = func(node ast.Node, indent string, isLast bool) {
		// Choose connector
		connector := "├─ "
		childIndent := indent + "│  "
		if isLast {
			connector = "└─ "
			childIndent = indent + "   "
		}
		line := paint(treeMutedColor, indent+connector) + paint(treeNodeColor, nodeType(node))
		if v := nodeValue(node); v != nil {
			line += " " + paint(treeLiteralColor, fmt.Sprint(v))
		}
		fmt.Fprintln(w, line)
		if isLeaf(node) {
			return
		}
		children := ast.Children(node)
		for i, child := range children {
			printNode(child, childIndent, i == len(children)-1)
		}
	}
	fmt.Fprintln(w, paint(treeNodeColor, "Program"))
	for i, stmt := range program.Stmts {
		printNode(stmt, "", i == len(program.Stmts)-1)
	}
}
