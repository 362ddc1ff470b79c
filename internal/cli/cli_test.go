package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineorder/pkg/observability"
)

func TestRootCommandAttachesLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	root := c.RootCommand()

	var gotLogger *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			gotLogger = loggerFromContext(cmd.Context())
			return nil
		},
	})

	root.SetArgs([]string{"probe"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("ExecuteContext: %v", err)
	}

	if gotLogger != c.Logger {
		t.Error("expected the command context to carry the CLI's logger")
	}
}

func TestNewRegistersLoggingOptimizeHooks(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	New(&buf, log.InfoLevel)

	if _, ok := observability.Optimize().(loggingOptimizeHooks); !ok {
		t.Errorf("New() should register loggingOptimizeHooks, got %T", observability.Optimize())
	}
}
