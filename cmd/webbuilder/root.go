package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magus-warrior/80-s-webbuilder/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "webbuilder",
		Short:         "Webbuilder inspects and renders page builder projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newBlocksCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loggerLevel(root *rootFlags) string {
	if root.verbose {
		return "debug"
	}
	return "info"
}

func newLogger(root *rootFlags) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: loggerLevel(root), HumanReadable: true})
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
