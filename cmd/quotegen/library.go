package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/quotegen/pkg/pipeline"
)

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: l10n.T("List size presets"),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n", l10n.T("ID"), l10n.T("Size"), l10n.T("Label"))
			for _, p := range e.presets.All() {
				fmt.Fprintf(w, "%s\t%dx%d\t%s\n", p.ID, p.Width, p.Height, p.DisplayLabel())
			}
			return w.Flush()
		},
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: l10n.T("List templates"),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()

			templates, err := e.styles.Templates(c.Context)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l10n.T("ID"), l10n.T("Name"), l10n.T("Scope"), l10n.T("Background"))
			for _, t := range templates {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Scope, describeBackground(t.Style))
			}
			return w.Flush()
		},
	}
}

func describeBackground(p pipeline.StylePatch) string {
	switch {
	case p.BackgroundGradient != nil:
		g := p.BackgroundGradient
		return fmt.Sprintf("%s → %s (%g°)", g.From, g.To, g.AngleDeg)
	case p.BackgroundColor != nil:
		return *p.BackgroundColor
	default:
		return "-"
	}
}

func assetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "assets",
		Usage: l10n.T("Manage the asset library"),
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  l10n.T("List exported assets, newest first"),
				Action: runAssetsList,
			},
			{
				Name:      "delete",
				Usage:     l10n.T("Delete an asset from the library"),
				ArgsUsage: l10n.T("<asset id>"),
				Action:    runAssetsDelete,
			},
		},
	}
}

func runAssetsList(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	if e.cfg.AssetStore.Driver == "memory" {
		e.log.Warn(l10n.T("Asset library is in memory; set --asset-db to keep assets between runs"))
	}

	assets, err := e.assets.List(c.Context)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l10n.T("ID"), l10n.T("File"), l10n.T("Size"), l10n.T("Created"), l10n.T("Preview"))
	for _, a := range assets {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%s\n",
			a.ID, a.Filename, a.Width, a.Height, a.CreatedAt.Local().Format("2006-01-02 15:04"), a.PreviewText)
	}
	return w.Flush()
}

func runAssetsDelete(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return cli.Exit(l10n.T("Asset id argument is required"), 1)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.assets.Delete(c.Context, id); err != nil {
		return err
	}
	e.log.Info(l10n.F("Deleted asset %s", id))
	return nil
}
