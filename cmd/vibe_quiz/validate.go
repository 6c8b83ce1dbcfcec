package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/vibe-quiz/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a schema",
	Long:  "Validates a JSON file against one of the built-in schemas (deck, quiz_result) or a schema file on disk.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Built-in schema name (deck, quiz_result) or path to a schema file (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file, or - for stdin (required)")
	mustMarkRequired(validateCmd, "schema")
	mustMarkRequired(validateCmd, "json")

	rootCmd.AddCommand(validateCmd)
}

// builtinSchema maps "deck" or "deck.schema.json" to the embedded schema name.
func builtinSchema(name string) (string, bool) {
	switch strings.TrimSuffix(name, ".schema.json") {
	case "deck":
		return schemas.Deck, true
	case "quiz_result":
		return schemas.QuizResult, true
	}
	return "", false
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	name, builtin := builtinSchema(validateSchema)
	switch {
	case validateJSON == "-":
		err = validateStdin(cmd.InOrStdin(), name, builtin)
	case builtin:
		data, readErr := os.ReadFile(validateJSON)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", validateJSON, readErr)
		}
		err = schemas.ValidateBytes(name, data)
	default:
		err = schemas.ValidateJSON(validateSchema, validateJSON)
	}

	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %v\n", err)
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}

func validateStdin(in io.Reader, name string, builtin bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if builtin {
		return schemas.ValidateBytes(name, data)
	}
	schema, err := os.ReadFile(validateSchema)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", validateSchema, err)
	}
	return schemas.ValidateJSONString(string(schema), string(data))
}
