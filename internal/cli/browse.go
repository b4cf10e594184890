package cli

import (
	"errors"
	"os"

	"github.com/chemaware/catalog/internal/logging"
	"github.com/chemaware/catalog/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the full-screen catalog browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("browse needs an interactive terminal, use list instead")
			}

			a, err := newApp(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			// log lines would tear the alt screen
			if logging.Log.GetLevel() < logrus.DebugLevel {
				logging.Log.SetLevel(logrus.ErrorLevel)
			}
			return tui.Run(cmd.Context(), a.browser)
		},
	}
}
