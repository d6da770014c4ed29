package commands

import (
	"fmt"
	"net/url"
	"path"

	"github.com/spf13/cobra"
)

// NewDownloadCommand returns the command that saves a result file by its URL.
func NewDownloadCommand(rootCmd *RootCommand) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download FILE_URL",
		Short: "Download a result file into the output directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileURL := args[0]
			name := output
			if name == "" {
				name = nameFromURL(fileURL)
			}

			p, err := rootCmd.newPrinter()
			if err != nil {
				return err
			}
			storage := rootCmd.newStorage()
			if !rootCmd.newClient().DownloadFile(cmd.Context(), fileURL, name, storage) {
				return fmt.Errorf("%s", rootCmd.Translator.T("common.downloadFailed"))
			}

			return p.PrintMessage(fmt.Sprintf("%s: %s", rootCmd.Translator.T("common.downloaded"), storage.PathFor(name)))
		},
	}

	cmd.Flags().StringVar(&output, "output-name", "", "Filename to save as (the last URL path segment by default).")

	return cmd
}

// nameFromURL returns the last path segment of a file URL, or "" when there is none.
func nameFromURL(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
