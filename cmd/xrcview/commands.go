// cmd/xrcview/commands.go
package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/test"
	"github.com/spf13/cobra"

	"xrcform/assets"
	"xrcform/binding"
	"xrcform/core"
	"xrcform/event"
	"xrcform/form"
	"xrcform/logging"
	"xrcform/resource"
	appTheme "xrcform/theme"
	"xrcform/ui"
)

// fnRunPreview shows the preview window and blocks until it is closed.
var fnRunPreview = func(a fyne.App, w fyne.Window) { w.ShowAndRun() }

// fnNewApp creates the application the preview runs in.
var fnNewApp = func() fyne.App { return app.NewWithID("io.xrcform.xrcview") }

func newListCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "list [FILE|DIR...]",
		Short:   "List the windows a resource document defines",
		Example: "  xrcview list forms.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.loadStore(args)
			if err != nil {
				return err
			}
			// Headless driver: materializing widgets needs a current app, not a display.
			test.NewApp()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tTITLE\tCONTROLS\tSOURCE")
			for _, l := range store.Layouts() {
				controls := "-"
				if tree, err := resource.Materialize(l); err == nil {
					controls = fmt.Sprint(len(tree.Controls()))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Name, l.WindowKind(), l.Title, controls, l.Source())
			}
			return tw.Flush()
		},
	}
}

// errCheckFailed is returned when any window fails to load.
var errCheckFailed = errors.New("check failed")

func newCheckCmd(s *settings) *cobra.Command {
	var handlers []string
	cmd := &cobra.Command{
		Use:   "check [FILE|DIR...]",
		Short: "Load every window headlessly and bind the given handler names",
		Example: "  xrcview check forms.yaml\n" +
			"  xrcview check forms.yaml --bind on_OK_button --bind on_1001_1010_button",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.loadStore(args)
			if err != nil {
				return err
			}
			// Headless driver: windows and dialogs load without a display.
			a := test.NewApp()
			parent := a.NewWindow("check")
			defer parent.Close()

			failed := 0
			out := cmd.OutOrStdout()
			for _, l := range store.Layouts() {
				f, err := checkLayout(a, parent, store, l, s.prefix, handlers)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", l.Name, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s (%s, %d controls, %d handlers)\n", l.Name, l.WindowKind(), len(f.Tree().Controls()), f.Handlers())
				f.Close()
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d windows", errCheckFailed, failed, len(store.Layouts()))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&handlers, "bind", nil, "Handler name to bind on every window (repeatable)")
	return cmd
}

func checkLayout(a fyne.App, parent fyne.Window, store *resource.Store, l *resource.Layout, prefix string, names []string) (*form.Form, error) {
	table := binding.NewTable().SetOwner(l.Name)
	for _, name := range names {
		table.Set(name, func() {})
	}
	opts := form.Options{ResName: l.Name, Store: store, Prefix: prefix, Handlers: table}
	switch l.WindowKind() {
	case core.Frame:
		return form.NewFrame(a, opts)
	case core.Dialog:
		return form.NewDialog(parent, opts)
	}
	return form.NewPanel(opts)
}

func newParseCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "parse NAME...",
		Short:   "Show the binding rule a handler name parses to",
		Example: "  xrcview parse on_Button1_button on_1001_1010_button",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &binding.Binder{Prefix: s.prefix}
			out := cmd.OutOrStdout()
			var errs []error
			for _, name := range args {
				rule, ok, err := b.Parse(name)
				switch {
				case err != nil:
					errs = append(errs, err)
					fmt.Fprintf(out, "%s: error: %v\n", name, err)
				case !ok:
					fmt.Fprintf(out, "%s: not a handler\n", name)
				default:
					fmt.Fprintf(out, "%s: %s\n", name, rule)
				}
			}
			return errors.Join(errs...)
		},
	}
}

func newPreviewCmd(s *settings) *cobra.Command {
	var entry, themeName string
	cmd := &cobra.Command{
		Use:   "preview [FILE|DIR...]",
		Short: "Open the preview window",
		Long:  "Open the preview window. Without files the built-in demo document is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var store *resource.Store
			if len(args) == 0 && len(s.file.Resources) == 0 {
				store = resource.NewStore()
				if err := store.LoadResource(assets.Demo()); err != nil {
					return err
				}
			} else {
				var err error
				if store, err = s.loadStore(args); err != nil {
					return err
				}
			}
			prev := resource.SetDefault(store)
			defer resource.SetDefault(prev)

			if entry == "" {
				entry = s.file.Entry
			}
			if themeName == "" {
				themeName = s.file.Theme
			}

			a := fnNewApp()
			th := appTheme.Named(themeName)
			if themeName == "" && store.Palette() != nil {
				var err error
				if th, err = appTheme.FromPalette(store.Palette()); err != nil {
					return err
				}
			}
			a.Settings().SetTheme(th)

			w := a.NewWindow("xrcview")
			width, height := s.file.Size()
			w.Resize(fyne.NewSize(width, height))

			p := ui.NewPreview(a, w, store, s.prefix)
			p.SetDark(themeName == "dark")
			w.SetContent(p.Content())
			if entry != "" {
				if err := p.Open(entry); err != nil {
					return err
				}
			}
			logging.L().Info().Int("windows", len(store.Names())).Int("events", len(event.Default().Names())).Msg("preview ready")
			fnRunPreview(a, w)
			return nil
		},
	}
	cmd.Flags().StringVar(&entry, "open", "", "Window to open at start")
	cmd.Flags().StringVar(&themeName, "theme", "", "light or dark (default: the document's palette)")
	return cmd
}
