package main

import (
	"fmt"
	"os"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	shapegen "github.com/shapegen/shapegen"
	"github.com/shapegen/shapegen/i18n"
	"github.com/shapegen/shapegen/internal/gen"
	"github.com/shapegen/shapegen/internal/manifest"
	"github.com/shapegen/shapegen/jsonschema"
)

func main() {
	app := &cli.App{
		Name:  "shapegen",
		Usage: "compile schema manifests into Go type declarations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Usage: "diagnostic language (en/ja)",
				Value: "en",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			i18n.SetLanguage(c.String("lang"))
			if c.Bool("debug") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			compileCommand(),
			checkCommand(),
			schemaCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "manifest",
			Aliases:  []string{"f"},
			Usage:    "manifest file describing the batch",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "constructor-prefix",
			Usage: "prefix added to every generated constructor identifier",
		},
		&cli.StringFlag{
			Name:  "field-prefix",
			Usage: "prefix added to every generated field identifier",
		},
		&cli.BoolFlag{
			Name:  "export-fields",
			Usage: "uppercase the first letter of field identifiers",
			Value: true,
		},
	}
}

func optionsFromFlags(c *cli.Context) shapegen.GenerateOptions {
	opts := shapegen.DefaultOptions()
	if p := c.String("constructor-prefix"); p != "" {
		opts.ConstructorModifier = func(s string) string { return p + s }
	}
	fieldMods := []func(string) string{}
	if c.Bool("export-fields") {
		fieldMods = append(fieldMods, upperFirst)
	}
	if p := c.String("field-prefix"); p != "" {
		fieldMods = append(fieldMods, func(s string) string { return p + s })
	}
	if len(fieldMods) > 0 {
		opts.FieldModifier = func(s string) string {
			for _, m := range fieldMods {
				s = m(s)
			}
			return s
		}
	}
	return opts
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func compileBatch(c *cli.Context) (*manifest.Manifest, []shapegen.Compiled, error) {
	m, err := manifest.LoadFile(c.String("manifest"))
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{
		"package": m.Package,
		"types":   len(m.Requests),
	}).Debug("manifest loaded")
	batch, err := shapegen.Compile(m.Requests, optionsFromFlags(c))
	if err != nil {
		return nil, nil, err
	}
	return m, batch, nil
}

func compileCommand() *cli.Command {
	flags := append(generateFlags(),
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "output Go file",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "package",
			Usage: "override the manifest's target package",
		},
		&cli.BoolFlag{
			Name:  "no-encoder",
			Usage: "skip Marshal* helpers in the generated file",
		},
		&cli.BoolFlag{
			Name:  "no-decoder",
			Usage: "skip Unmarshal* helpers in the generated file",
		},
	)
	return &cli.Command{
		Name:  "compile",
		Usage: "compile a manifest into a generated Go source file",
		Flags: flags,
		Action: func(c *cli.Context) error {
			m, batch, err := compileBatch(c)
			if err != nil {
				return reportIssues(err)
			}
			pkg := m.Package
			if p := c.String("package"); p != "" {
				pkg = p
			}
			opts := optionsFromFlags(c)
			opts.EmitEncoder = !c.Bool("no-encoder")
			opts.EmitDecoder = !c.Bool("no-decoder")
			src, err := gen.RenderFile(pkg, batch, opts)
			if err != nil {
				return err
			}
			out := c.String("out")
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"out":          out,
				"declarations": len(batch),
			}).Info("generated")
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "compile a manifest and report diagnostics without writing output",
		Flags: generateFlags(),
		Action: func(c *cli.Context) error {
			_, batch, err := compileBatch(c)
			if err != nil {
				return reportIssues(err)
			}
			for _, d := range batch {
				logrus.WithFields(logrus.Fields{
					"type":         d.Declaration.Name,
					"constructors": len(d.Declaration.Constructors),
				}).Info("ok")
			}
			return nil
		},
	}
}

func schemaCommand() *cli.Command {
	flags := append(generateFlags(),
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "declared name of the type to export",
			Required: true,
		},
	)
	return &cli.Command{
		Name:  "schema",
		Usage: "print the JSON Schema of one manifest type's wire form",
		Flags: flags,
		Action: func(c *cli.Context) error {
			m, err := manifest.LoadFile(c.String("manifest"))
			if err != nil {
				return err
			}
			name := c.String("type")
			for _, req := range m.Requests {
				if req.DeclaredName != name {
					continue
				}
				if req.Schema == nil {
					return fmt.Errorf("type %q has no schema to export", name)
				}
				s, err := jsonschema.FromSchemaType(req.Schema)
				if err != nil {
					return err
				}
				out, err := j.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			return fmt.Errorf("no type named %q in the manifest", name)
		},
	}
}

// reportIssues logs each compiler diagnostic with its path and schema before
// returning the error for the non-zero exit.
func reportIssues(err error) error {
	iss, ok := shapegen.AsIssues(err)
	if !ok {
		return err
	}
	for _, it := range iss {
		entry := logrus.WithFields(logrus.Fields{"path": it.Path, "code": it.Code})
		if it.Schema != nil {
			entry = entry.WithField("schema", it.Schema.String())
		}
		if it.Hint != "" {
			entry = entry.WithField("hint", it.Hint)
		}
		entry.Error(it.Message)
	}
	return cli.Exit("compilation failed", 1)
}
