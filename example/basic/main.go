package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/siherrmann/nluparsers"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
)

func main() {
	gazetteerPath := filepath.Join("testdata", "builtin_gazetteer_parser")

	parser, err := nluparsers.NewBuiltinEntityParser(model.BuiltinEntityParserConfig{
		Language:            ontology.EN,
		GazetteerParserPath: &gazetteerPath,
	})
	if err != nil {
		log.Fatalf("Failed to create parser: %v", err)
	}

	sentences := []string{
		"Book me a table for three people at 8pm tomorrow",
		"It costs about 20 dollars and it is 25 degrees outside",
		"I want to listen to the rolling stones",
	}

	for _, sentence := range sentences {
		fmt.Printf("\n%s\n", sentence)
		for _, entity := range parser.Extract(sentence, nil) {
			fmt.Printf("  %-14s %-24q [%d:%d] %+v\n",
				entity.EntityKind.Identifier(),
				entity.Value,
				entity.Range.Start,
				entity.Range.End,
				entity.Entity,
			)
		}
	}

	// Restrict extraction to a scope
	scope := []ontology.BuiltinEntityKind{ontology.KindNumber}
	fmt.Printf("\nOnly numbers: %+v\n", parser.Extract("three tables at 8pm", scope))

	fmt.Println("\nBasic example completed successfully!")
}
