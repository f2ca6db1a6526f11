//
// shogigo - a Shogi (Japanese chess) playing engine in Go
//
// MIT License
//
// Copyright (c) 2024 The shogigo Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command shogigo is a minimal embedder demo, not a protocol front
// end: it constructs one engine.Engine the way a host application
// would, runs a single CalculateBestMove call from the starting
// position and prints the result.
package main

import (
	"flag"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/komatsu/shogigo/internal/config"
	"github.com/komatsu/shogigo/internal/engine"
	"github.com/komatsu/shogigo/internal/position"
)

var out = message.NewPrinter(language.German)

func main() {
	// go tool pprof -http=localhost:8080 shogigo cpu.pprof
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to a TOML configuration file (defaults built in if omitted)")
	difficulty := flag.String("difficulty", "intermediate", "beginner|intermediate|advanced|expert")
	bookPath := flag.String("bookpath", "", "path to an opening book directory (disk overflow tier); empty disables it")
	profilePath := flag.String("profile", "", "if set, write a CPU profile under this directory for the one search performed")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			out.Println("config error:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg = cfg.WithDifficulty(parseDifficulty(*difficulty))
	if *bookPath != "" {
		cfg.Book.DiskDir = *bookPath
		cfg.Search.UseOpeningBook = true
	}

	var opts []engine.Option
	if *profilePath != "" {
		opts = append(opts, engine.WithProfiling(*profilePath))
	}
	e := engine.New(cfg, opts...)

	if cfg.Search.UseOpeningBook {
		if err := e.LoadOpeningBook(); err != nil {
			out.Println("opening book unavailable, continuing without one:", err)
		}
	}

	pos := position.New()
	move, err := e.CalculateBestMove(pos.Board, pos.Hands, pos.SideToMove, nil)
	if err != nil {
		out.Println("no move found:", err)
		os.Exit(1)
	}

	result := e.GetLastEvaluation()
	out.Printf("position:  %s\n", pos.Key())
	out.Printf("best move: %s\n", move)
	out.Printf("score:     %d\n", result.Score)
	out.Printf("depth:     %d\n", result.Depth)
	out.Printf("nodes:     %d\n", result.Nodes)
}

func parseDifficulty(name string) config.Difficulty {
	switch name {
	case "beginner":
		return config.Beginner
	case "advanced":
		return config.Advanced
	case "expert":
		return config.Expert
	default:
		return config.Intermediate
	}
}

func printVersionInfo() {
	out.Println("shogigo - a Shogi engine in Go")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
