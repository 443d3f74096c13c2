package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/vocabind/vocabind"
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "roundtrip":
		roundtripCmd(os.Args[2:])
	case "dump":
		dumpCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "vocabind CLI\n\nUsage:\n  vocabind check -schema vocab.yml\n  vocabind roundtrip -schema vocab.yml -type Object [-in doc.json] [-indent]\n  vocabind dump -schema vocab.yml -type Object [-in doc.json]\n\nNotes:\n  - roundtrip and dump read the document from stdin when -in is omitted.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema file (YAML or JSON)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg := compile(schemaPath)
	for _, name := range reg.Types() {
		b, _ := reg.Binding(name)
		fmt.Printf("%s (%d variants)\n", name, len(b.Subtypes()))
	}
}

func roundtripCmd(args []string) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	var schemaPath, typeName, in string
	var indent bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (YAML or JSON)")
	fs.StringVar(&typeName, "type", "", "base type to decode against")
	fs.StringVar(&in, "in", "", "input document (defaults to stdin)")
	fs.BoolVar(&indent, "indent", false, "indent the re-encoded output")
	_ = fs.Parse(args)
	if schemaPath == "" || typeName == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg := compile(schemaPath)
	doc := decodeDoc(reg, typeName, in)
	out := reg.EncodeDocument(doc)
	if indent {
		b, err := jsonv.EncodeIndent(out, "", "  ")
		if err != nil {
			fatalf("indent: %v", err)
		}
		fmt.Println(string(b))
		return
	}
	fmt.Println(string(jsonv.EncodeBytes(out)))
}

func dumpCmd(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var schemaPath, typeName, in string
	fs.StringVar(&schemaPath, "schema", "", "schema file (YAML or JSON)")
	fs.StringVar(&typeName, "type", "", "base type to decode against")
	fs.StringVar(&in, "in", "", "input document (defaults to stdin)")
	_ = fs.Parse(args)
	if schemaPath == "" || typeName == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg := compile(schemaPath)
	doc := decodeDoc(reg, typeName, in)
	fmt.Printf("type: %s\n", doc.Body.TypeName())
	spew.Fdump(os.Stdout, doc)
}

func compile(schemaPath string) *vocabind.Registry {
	s, err := schema.LoadFile(schemaPath)
	if err != nil {
		fatalf("load schema: %v", err)
	}
	reg, err := vocabind.Compile(s)
	if err != nil {
		fatalf("compile schema: %v", err)
	}
	return reg
}

func decodeDoc(reg *vocabind.Registry, typeName, in string) *vocabind.Document {
	var src []byte
	var err error
	if in == "" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(in)
	}
	if err != nil {
		fatalf("read input: %v", err)
	}
	v, err := jsonv.DecodeBytes(src)
	if err != nil {
		fatalf("parse input: %v", err)
	}
	doc, err := reg.DecodeDocument(context.Background(), typeName, v)
	if err != nil {
		fatalf("decode: %v", err)
	}
	return doc
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
