package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/protein"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/seq"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/pdb"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/uniprot"
)

type options struct {
	command string
	id      string
	args    []string

	table  int
	toStop bool
	format string
	count  bool
	detail int
	term   int
	limit  int
}

type cli struct {
	registry *registry.Client
	services protein.Services
	out      io.Writer
}

type command func(cli, context.Context, *protein.Protein, options) error

var commands = map[string]command{
	"overview":   cli.overview,
	"attr":       cli.attribute,
	"seq":        cli.sequence,
	"protein":    cli.translate,
	"uniprot":    cli.uniprotEntry,
	"structures": cli.structures,
	"go":         cli.goTerms,
	"models":     cli.models,
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func (c cli) run(ctx context.Context, opts options) error {
	cmd, ok := commands[opts.command]
	if !ok {
		return fmt.Errorf("unknown command %q - must be one of %s", opts.command, commandNames())
	}

	part, err := c.registry.Fetch(ctx, opts.id)
	if err != nil {
		return err
	}
	return cmd(c, ctx, protein.New(part, c.services), opts)
}

func (c cli) overview(_ context.Context, p *protein.Protein, _ options) error {
	return p.Overview(c.out)
}

func (c cli) attribute(_ context.Context, p *protein.Protein, opts options) error {
	if len(opts.args) != 1 {
		return errors.New("attr takes exactly one path")
	}
	value, err := p.Attribute(opts.args[0])
	var absent *registry.AbsentError
	if errors.As(err, &absent) {
		_, err = fmt.Fprintln(c.out, absent.Message())
		return err
	} else if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, value)
	return err
}

func (c cli) sequence(_ context.Context, p *protein.Protein, _ options) error {
	s, err := p.Sequence()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, s)
	return err
}

func (c cli) translate(_ context.Context, p *protein.Protein, opts options) error {
	table, err := seq.TableByID(opts.table)
	if err != nil {
		return err
	}
	translate := p.Translate
	if opts.toStop {
		translate = p.TranslateToStop
	}
	aa, err := translate(table)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, aa)
	return err
}

func (c cli) uniprotEntry(ctx context.Context, p *protein.Protein, opts options) error {
	format := uniprot.Text
	if opts.format != "" {
		f, err := uniprot.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		format = f
	}
	b, err := p.UniProtOverview(ctx, format)
	if errors.Is(err, registry.ErrNoUniProtID) {
		_, err = fmt.Fprintln(c.out, "No UniProt ID present.")
		return err
	} else if err != nil {
		return err
	}
	_, err = c.out.Write(b)
	return err
}

func (c cli) structures(ctx context.Context, p *protein.Protein, opts options) error {
	err := c.printStructures(ctx, p, opts)
	if errors.Is(err, registry.ErrNoUniProtID) {
		_, err = fmt.Fprintln(c.out, "No structures yet ascertained.")
	}
	return err
}

func (c cli) printStructures(ctx context.Context, p *protein.Protein, opts options) error {
	switch {
	case opts.count:
		n, err := p.StructureCount(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, n)
		return err
	case opts.detail > 0:
		format := pdb.PDB
		if opts.format != "" {
			f, err := pdb.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			format = f
		}
		b, err := p.StructureFile(ctx, opts.detail, format)
		if err != nil {
			return err
		}
		_, err = c.out.Write(b)
		return err
	default:
		ids, err := p.Structures(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, strings.Join(ids, "\n"))
		return err
	}
}

func (c cli) goTerms(ctx context.Context, p *protein.Protein, _ options) error {
	return p.PrintGOAttributes(ctx, c.out)
}

func (c cli) models(ctx context.Context, p *protein.Protein, opts options) error {
	related, err := p.RelatedModels(ctx, opts.term, opts.limit)
	if err != nil {
		return err
	}
	for i, accession := range related.Proteins {
		if _, err := fmt.Fprintf(c.out, "%s\t%s\n", accession, strings.Join(related.Models[i], ",")); err != nil {
			return err
		}
	}
	return nil
}
