// docs-generator prints the environment variables accepted by lpsgateway as
// a markdown table. Tags are read from the options structs via reflection.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/options"
)

var (
	typeFlag   *string
	outputFlag *string

	validTypes  = []string{"env"}
	validOutput = []string{"markdown"}
)

type KongTag struct {
	Var      string
	Help     string
	Default  string
	Required bool
}

type Section struct {
	Name string
	Tags []*KongTag
}

func main() {
	if err := parseFlags(); err != nil {
		log.Fatalf("error: %s", err)
	}

	switch *typeFlag {
	case "env":
		displayMarkdown(os.Stdout, sections())
	default:
		log.Fatalf("unknown cmd '%s'", *typeFlag)
	}
}

func sections() []*Section {
	return []*Section{
		{Name: "Global", Tags: structTags(reflect.TypeOf(options.GlobalOptions{}))},
		{Name: "Serve", Tags: structTags(reflect.TypeOf(options.ServeOptions{}))},
	}
}

// structTags returns the kong tags of t that expose an env var, in field order
func structTags(t reflect.Type) []*KongTag {
	tags := make([]*KongTag, 0)

	for i := 0; i < t.NumField(); i++ {
		raw, ok := t.Field(i).Tag.Lookup("kong")
		if !ok || raw == "-" {
			continue
		}

		kongTag := parseKongTag(raw)

		// Skip options that don't expose an env var
		if kongTag.Var == "" {
			continue
		}

		tags = append(tags, kongTag)
	}

	return tags
}

// parseKongTag understands the subset of kong tag syntax used by options:
// comma separated key='value' pairs plus the bare "required" flag.
func parseKongTag(s string) *KongTag {
	kongTag := &KongTag{}

	for _, part := range splitKongTag(s) {
		if part == "required" {
			kongTag.Required = true
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}

		value := strings.Trim(kv[1], "'")

		switch kv[0] {
		case "help":
			kongTag.Help = value
		case "env":
			kongTag.Var = value
		case "default":
			kongTag.Default = value
		}
	}

	return kongTag
}

// splitKongTag splits on commas that are not inside single quotes
func splitKongTag(s string) []string {
	parts := make([]string, 0)

	var (
		quoted bool
		start  int
	)

	for i, r := range s {
		switch r {
		case '\'':
			quoted = !quoted
		case ',':
			if !quoted {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

func displayMarkdown(w io.Writer, sections []*Section) {
	fmt.Fprintf(w, "# Available environment variables\n")

	for _, section := range sections {
		fmt.Fprintf(w, "\n## %s\n\n", section.Name)
		fmt.Fprintf(w, "| **Environment Variable** | **Description** | **Default** | **Required** |\n")
		fmt.Fprintf(w, "| ------------------------ | --------------- | ----------- | ------------ |\n")

		for _, v := range section.Tags {
			requiredStr := fmt.Sprint(v.Required)

			if v.Required {
				requiredStr = "**" + requiredStr + "**"
			}

			fmt.Fprintf(w, "| %s | %s | %s | %v |\n", v.Var, v.Help, v.Default, requiredStr)
		}
	}
}

func parseFlags() error {
	typeFlag = flag.String("type", "env", "What type of docs to generate (options: env)")
	outputFlag = flag.String("output", "markdown", "What format to use for output (options: markdown)")

	flag.Parse()

	if !contains(validTypes, *typeFlag) {
		return fmt.Errorf("'%s' is an invalid -type", *typeFlag)
	}

	if !contains(validOutput, *outputFlag) {
		return errors.Errorf("'%s' is an invalid -output", *outputFlag)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
