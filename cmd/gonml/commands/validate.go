package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/gonml"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate <file.nml>",
	Short: "Validate a namelist file against its schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "glm", "document kind to validate against")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("cannot read file", "file", path, "err", err)
		return err
	}
	dict, err := gonml.ReadAs(string(data), validateKind)
	if err != nil {
		report(path, err)
		return err
	}
	ctor, err := gonml.DefaultRegistry.LookupDocument(validateKind)
	if err != nil {
		report(path, err)
		return err
	}
	doc := ctor()
	if err := doc.FromDict(dict); err != nil {
		report(path, err)
		return err
	}
	if err := doc.Validate(); err != nil {
		report(path, err)
		return err
	}
	log.Info("valid", "file", path, "kind", validateKind)
	return nil
}

func report(path string, err error) {
	if iss, ok := gonml.AsIssues(err); ok {
		for _, it := range iss {
			log.Error("invalid", "file", path, "code", it.Code, "at", it.Path(), "msg", it.Message)
		}
		return
	}
	log.Error("invalid", "file", path, "err", err)
}
