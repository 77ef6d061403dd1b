package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	zodresolve "github.com/maastrich/zod-resolve"
	"github.com/maastrich/zod-resolve/jsonschema"
	"github.com/maastrich/zod-resolve/schemadef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "paths":
		pathsCmd(os.Args[2:])
	case "resolve":
		resolveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "zodresolve CLI\n\nUsage:\n  zodresolve paths -schema def.yaml|def.json [-kinds]\n  zodresolve resolve -schema def.yaml|def.json -path posts[].title\n\nNotes:\n  - The schema definition format is documented in package schemadef.\n  - resolve prints the sub-schema as JSON Schema.")
}

func pathsCmd(args []string) {
	fs := flag.NewFlagSet("paths", flag.ExitOnError)
	var schemaFile string
	var kinds bool
	fs.StringVar(&schemaFile, "schema", "", "schema definition file (.json/.yaml)")
	fs.BoolVar(&kinds, "kinds", false, "print the node kind next to each path")
	_ = fs.Parse(args)
	if schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}

	root := loadSchema(schemaFile)
	fm, err := zodresolve.Flatten(root)
	if err != nil {
		fatalf("flatten: %v", err)
	}
	for _, p := range fm.Keys() {
		if kinds {
			s, _ := fm.Get(p)
			fmt.Printf("%s\t%s\n", p, s.Kind())
			continue
		}
		fmt.Println(p)
	}
}

func resolveCmd(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	var schemaFile string
	var path string
	fs.StringVar(&schemaFile, "schema", "", "schema definition file (.json/.yaml)")
	fs.StringVar(&path, "path", "", "path to resolve (e.g. posts[].title)")
	_ = fs.Parse(args)
	if schemaFile == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}

	root := loadSchema(schemaFile)
	s, err := zodresolve.Resolve(root, path)
	if err != nil {
		fatalf("resolve: %v", err)
	}
	js, err := jsonschema.FromSchema(s)
	if err != nil {
		fatalf("export: %v", err)
	}
	b, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		fatalf("marshal: %v", err)
	}
	fmt.Println(string(b))
}

func loadSchema(file string) zodresolve.Schema {
	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	ext := strings.ToLower(filepath.Ext(file))
	var root zodresolve.Schema
	if ext == ".yaml" || ext == ".yml" {
		root, err = schemadef.ImportYAML(data)
	} else {
		root, err = schemadef.Import(data)
	}
	if err != nil {
		fatalf("importing schema: %v", err)
	}
	return root
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "zodresolve: "+format+"\n", a...)
	os.Exit(1)
}
