package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/gonml"
)

var (
	convertKind string
	convertRaw  bool
	wrapWidth   int
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert between .nml, .json, and .yaml",
	Long: `Convert a configuration file between formats, chosen by file
extension: .nml, .json, .yaml (or .yml).

Reading an .nml file uses the schema registered for --kind so values get
their declared types; --raw infers types from the text instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertKind, "kind", "glm", "document kind whose schema types the values")
	convertCmd.Flags().BoolVar(&convertRaw, "raw", false, "infer types from the text instead of a schema")
	convertCmd.Flags().IntVar(&wrapWidth, "wrap", 0, "wrap written lists after this many items")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	doc, err := load(in)
	if err != nil {
		log.Error("cannot read input", "file", in, "err", err)
		return err
	}
	if err := dump(out, doc); err != nil {
		log.Error("cannot write output", "file", out, "err", err)
		return err
	}
	log.Info("converted", "from", in, "to", out)
	return nil
}

func load(path string) (*gonml.DocDict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext(path) {
	case ".nml":
		if convertRaw {
			return gonml.ReadRaw(string(data))
		}
		return gonml.ReadAs(string(data), convertKind)
	case ".json":
		return gonml.DecodeJSON(data)
	case ".yaml", ".yml":
		return gonml.DecodeYAML(data)
	}
	return nil, fmt.Errorf("unsupported input format %q", ext(path))
}

func dump(path string, doc *gonml.DocDict) error {
	var data []byte
	var err error
	switch ext(path) {
	case ".nml":
		var text string
		var opts []gonml.WriteOption
		if wrapWidth > 0 {
			opts = append(opts, gonml.WrapLists(wrapWidth))
		}
		text, err = gonml.Write(doc, opts...)
		data = []byte(text)
	case ".json":
		data, err = gonml.EncodeJSON(doc)
	case ".yaml", ".yml":
		data, err = gonml.EncodeYAML(doc)
	default:
		return fmt.Errorf("unsupported output format %q", ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
