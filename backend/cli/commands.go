package cli

import (
	"fmt"

	"tutorstate/backend/models"

	"github.com/spf13/cobra"
)

func newModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List tutorial modules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderModules(cmd.OutOrStdout())
		},
	}
}

func moduleArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if _, ok := models.FindModule(args[0]); !ok {
		return fmt.Errorf("unknown module %q", args[0])
	}
	return nil
}

func newProgressCommand() *cobra.Command {
	// show runs after every mutation as well
	show := func(cmd *cobra.Command, d *deps) {
		renderProgress(cmd.OutOrStdout(), d.progress.Get(), d.progress.Overview())
	}

	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show or change module progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			show(cmd, d)
			return nil
		},
	}

	progressCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show progress for every module",
		Args:  cobra.NoArgs,
		RunE:  progressCmd.RunE,
	})

	progressCmd.AddCommand(&cobra.Command{
		Use:   "visit MODULE",
		Short: "Mark a module visited",
		Args:  moduleArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d.progress.MarkVisited(args[0])
			show(cmd, d)
			return nil
		},
	})

	var undo bool
	completeCmd := &cobra.Command{
		Use:   "complete MODULE",
		Short: "Mark a module completed",
		Args:  moduleArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d.progress.MarkCompleted(args[0], !undo)
			show(cmd, d)
			return nil
		},
	}
	completeCmd.Flags().BoolVar(&undo, "undo", false, "mark the module not completed")
	progressCmd.AddCommand(completeCmd)

	progressCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear progress for every module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d.progress.Reset()
			show(cmd, d)
			return nil
		},
	})

	return progressCmd
}

func newThemeCommand() *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the display theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			renderTheme(cmd.OutOrStdout(), d.theme.Get())
			return nil
		},
	}

	themeCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE:  themeCmd.RunE,
	})

	themeCmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d.theme.ToggleTheme()
			renderTheme(cmd.OutOrStdout(), d.theme.Get())
			return nil
		},
	})

	themeCmd.AddCommand(&cobra.Command{
		Use:       "set light|dark",
		Short:     "Set the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := models.ParseTheme(args[0])
			if err != nil {
				return err
			}
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			d.theme.SetTheme(theme)
			renderTheme(cmd.OutOrStdout(), d.theme.Get())
			return nil
		},
	})

	return themeCmd
}
