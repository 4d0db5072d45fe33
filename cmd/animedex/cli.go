package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kitanime/animedex/otakudesu"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Client *otakudesu.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string  `default:"https://otakudesu.cloud" env:"ANIMEDEX_BASE_URL" help:"Source site mirror"`
	Browser bool    `short:"b" help:"Render pages in a headless browser"`
	Rate    float64 `default:"0" help:"Request rate limit in requests per second (0 disables)"`
	Verbose bool    `short:"v" help:"Log every fetch to stderr"`

	Home     HomeCmd     `cmd:"" help:"Show the front page's ongoing and complete sections"`
	Ongoing  OngoingCmd  `cmd:"" help:"List ongoing anime"`
	Complete CompleteCmd `cmd:"" help:"List complete anime"`
	Anime    AnimeCmd    `cmd:"" help:"Show a full anime profile"`
	Episodes EpisodesCmd `cmd:"" help:"List an anime's episodes"`
	Batch    BatchCmd    `cmd:"" help:"Resolve an anime's batch download entry"`
	Search   SearchCmd   `cmd:"" help:"Search anime by keyword"`
	Genres   GenresCmd   `cmd:"" help:"List the genre taxonomy"`
	Genre    GenreCmd    `cmd:"" help:"List anime in a genre"`
}

// HomeCmd is the "home" subcommand.
type HomeCmd struct{}

// OngoingCmd is the "ongoing" subcommand.
type OngoingCmd struct {
	Page        int `arg:"" optional:"" default:"1" help:"Page number"`
	Pages       int `short:"n" default:"1" help:"Fetch this many consecutive pages"`
	Concurrency int `short:"c" default:"4" help:"Concurrent fetch limit for page ranges"`
}

// CompleteCmd is the "complete" subcommand.
type CompleteCmd struct {
	Page        int `arg:"" optional:"" default:"1" help:"Page number"`
	Pages       int `short:"n" default:"1" help:"Fetch this many consecutive pages"`
	Concurrency int `short:"c" default:"4" help:"Concurrent fetch limit for page ranges"`
}

// AnimeCmd is the "anime" subcommand.
type AnimeCmd struct {
	Slug string `arg:"" help:"Anime slug"`
}

// EpisodesCmd is the "episodes" subcommand.
type EpisodesCmd struct {
	Slug string `arg:"" help:"Anime slug"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Slug string `arg:"" help:"Anime slug"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword string `arg:"" help:"Search keyword"`
}

// GenresCmd is the "genres" subcommand.
type GenresCmd struct{}

// GenreCmd is the "genre" subcommand.
type GenreCmd struct {
	Slug string `arg:"" help:"Genre slug"`
	Page int    `arg:"" optional:"" default:"1" help:"Page number"`
}

// printJSON writes v as indented JSON, the CLI's only output format.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
