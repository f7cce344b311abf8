package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pageza/nutrilog/backend/internal/catalog"
)

func main() {
	path := flag.String("file", "data/catalog.yaml", "catalog document to check")
	flag.Parse()

	store, err := catalog.Source{Path: *path}.Load(context.Background())
	if err != nil {
		var integrity *catalog.IntegrityError
		if errors.As(err, &integrity) {
			fmt.Fprintf(os.Stderr, "%s: %d violations\n", *path, len(integrity.Violations))
			for _, v := range integrity.Violations {
				fmt.Fprintf(os.Stderr, "  %s\n", v)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", *path, err)
		os.Exit(1)
	}

	counts := store.Counts()
	fmt.Printf("%s: ok (%d foods, %d add-ons, %d recipes)\n", *path, counts.Foods, counts.Addons, counts.Recipes)
}
