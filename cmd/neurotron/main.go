package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/htm-community/neurotron"
	"github.com/htm-community/neurotron/encoders"
)

func main() {
	toy := flag.String("toy", "mary", "toy token table (mary or sarah)")
	sentence := flag.String("sentence", "Mary likes to sing .", "blank separated words")
	repeat := flag.Int("repeat", 1, "number of passes over the sentence")
	cells := flag.Int("m", 2, "cells per minicolumn")
	dendrites := flag.Int("d", 2, "dendrites per cell")
	synapses := flag.Int("s", 5, "synapses per dendrite")
	random := flag.Bool("random", true, "random prediction wiring")
	seed := flag.Int64("seed", 1, "random seed")
	verbosity := flag.Int("v", 0, "verbosity")
	show := flag.Bool("train", false, "show word and context bookkeeping")
	flag.Parse()

	var tok *encoders.Token
	switch strings.ToLower(*toy) {
	case "mary":
		tok = encoders.Mary()
	case "sarah":
		tok = encoders.Sarah()
	default:
		fmt.Fprintf(os.Stderr, "unknown toy %q\n", *toy)
		os.Exit(2)
	}

	rnd := rand.New(rand.NewSource(*seed))
	_, width := tok.Shape()

	p := neurotron.NewClusterParams()
	p.CellsPerColumn = *cells
	p.Columns = width
	p.Dendrites = *dendrites
	p.Synapses = *synapses
	p.Random = *random
	p.CollectStats = true
	p.Verbosity = *verbosity
	c := neurotron.NewClusterRand(p, rnd)

	enc := &encoders.Encoder{Encoders: []encoders.ValueEncoder{tok}}
	record := neurotron.NewRecord(c)
	train := neurotron.NewClusterTrain(c, tok)

	words := strings.Fields(*sentence)
	for pass := 0; pass < *repeat; pass++ {
		for _, word := range words {
			if _, err := tok.Lookup(word, rnd); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			y := c.Input(enc.Encode(word))
			y = c.Iterate(y)
			record.Capture(c)
			if *verbosity > 0 {
				record.Log(os.Stdout, c, y, word)
			}

			output, predicted := c.Decode(tok)
			fmt.Printf("%v -> output %q, predicted %q\n", word, output, predicted)
			fmt.Print(c.StateMap())
		}
		if _, err := train.Sequence("", words); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println(record.Pattern())
	fmt.Print(c.Stats().ToString())
	if *show {
		train.Show(os.Stdout, true)
	}
}
