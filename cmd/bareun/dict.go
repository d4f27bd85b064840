package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gembleman/bareun-go/pkg/bareun"
	"github.com/gembleman/bareun-go/pkg/dictionary"
)

const dictUsage = `usage: bareun dict <list|get|update|remove|conflict> [flags] [domains...]`

func (a *app) runDict(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.stderr, dictUsage)
		return errUsage
	}

	conn, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	client := bareun.NewCustomDictClient(conn)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.dictList(ctx, client)
	case "get":
		return a.dictGet(ctx, client, rest)
	case "update":
		return a.dictUpdate(ctx, client, rest)
	case "remove":
		return a.dictRemove(ctx, client, rest)
	case "conflict":
		return a.dictConflict(ctx, client, rest)
	default:
		fmt.Fprintf(a.stderr, "unknown dict command %q\n%s\n", sub, dictUsage)
		return errUsage
	}
}

func (a *app) dictList(ctx context.Context, client *bareun.CustomDictClient) error {
	metas, err := client.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "domain\tnp\tcp\tcp_caret\tvv\tva")
	for _, m := range metas {
		fmt.Fprintf(a.stdout, "%s\t%d\t%d\t%d\t%d\t%d\n",
			m.DomainName, m.NpSetCount, m.CpSetCount, m.CpCaretSetCount, m.VvSetCount, m.VaSetCount)
	}
	return nil
}

// dictGet fetches every named domain concurrently and prints set sizes, or
// writes each domain as a pack file when -o is given.
func (a *app) dictGet(ctx context.Context, client *bareun.CustomDictClient, args []string) error {
	fs := newFlagSet(a, "dict get", "domain...")
	outDir := fs.String("o", "", "write <domain>.yaml packs into this directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	domains := fs.Args()
	if len(domains) == 0 {
		fs.Usage()
		return errUsage
	}

	dicts := make([]*bareun.CustomDict, len(domains))
	for i, name := range domains {
		d, err := bareun.NewCustomDict(name, client)
		if err != nil {
			return err
		}
		dicts[i] = d
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, d := range dicts {
		g.Go(func() error {
			if err := d.Load(gctx); err != nil {
				return fmt.Errorf("get %s: %w", d.Domain(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return err
		}
	}
	for _, d := range dicts {
		if *outDir != "" {
			path := filepath.Join(*outDir, d.Domain()+".yaml")
			if err := dictionary.SavePack(path, d.Pack()); err != nil {
				return err
			}
			a.log.Info("saved dictionary pack", "domain", d.Domain(), "path", path)
			continue
		}
		for _, k := range bareun.SetKinds {
			words := d.Set(k)
			fmt.Fprintf(a.stdout, "%s\t%s\t%d\t%s\n", d.Domain(), k, len(words), strings.Join(words, ","))
		}
	}
	return nil
}

func (a *app) dictUpdate(ctx context.Context, client *bareun.CustomDictClient, args []string) error {
	fs := newFlagSet(a, "dict update", "")
	domain := fs.String("domain", a.cfg.Analyze.Domain, "domain to replace (defaults to the pack's domain)")
	packPath := fs.String("pack", "", "YAML dictionary pack")
	files := make(map[bareun.SetKind]*string, len(bareun.SetKinds))
	for _, k := range bareun.SetKinds {
		name := strings.ReplaceAll(k.String(), "_", "-")
		files[k] = fs.String(name, "", "word list file for the "+k.String()+" set")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var pack *dictionary.Pack
	if *packPath != "" {
		p, err := dictionary.LoadPack(*packPath)
		if err != nil {
			return err
		}
		pack = p
		if *domain == "" {
			*domain = p.Domain
		}
	}

	d, err := bareun.NewCustomDict(*domain, client)
	if err != nil {
		return err
	}
	if pack != nil {
		d.LoadPack(pack)
	}

	if *files[bareun.SetNP] == "" && a.cfg.Dict.WordListURL != "" {
		path := filepath.Join(a.cfg.Dict.PackDir, d.Domain()+"-np.txt")
		if err := os.MkdirAll(a.cfg.Dict.PackDir, 0o755); err != nil {
			return err
		}
		if err := dictionary.EnsureWordList(ctx, nil, a.cfg.Dict.WordListURL, path); err != nil {
			return err
		}
		*files[bareun.SetNP] = path
	}
	for _, k := range bareun.SetKinds {
		if path := *files[k]; path != "" {
			if err := d.ReadSetFromFile(k, path); err != nil {
				return fmt.Errorf("read %s set: %w", k, err)
			}
		}
	}

	ok, err := d.Update(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not acknowledge domain %q", d.Domain())
	}
	fmt.Fprintf(a.stdout, "updated %s\n", d.Domain())
	return nil
}

func (a *app) dictRemove(ctx context.Context, client *bareun.CustomDictClient, args []string) error {
	fs := newFlagSet(a, "dict remove", "[domain...]")
	all := fs.Bool("all", false, "remove every domain")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var removed []string
	var err error
	switch {
	case *all:
		removed, err = client.RemoveAll(ctx)
	case fs.NArg() > 0:
		removed, err = client.Remove(ctx, fs.Args())
	default:
		fs.Usage()
		return errUsage
	}
	if err != nil {
		return err
	}
	return a.printLines(removed)
}

func (a *app) dictConflict(ctx context.Context, client *bareun.CustomDictClient, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.stderr, "usage: bareun dict conflict domain domain...")
		return errUsage
	}
	conflicts, err := client.CheckConflict(ctx, args)
	if err != nil {
		return err
	}
	for _, c := range conflicts {
		fmt.Fprintf(a.stdout, "%s\t%s\n", c.Word, strings.Join(c.DomainNames, ","))
	}
	return nil
}
