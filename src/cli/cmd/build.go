package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Summpot/test-cdylib/src/cargo"
	"github.com/Summpot/test-cdylib/src/output"
	"github.com/Summpot/test-cdylib/src/project"
	"github.com/spf13/cobra"
)

var (
	bFeatures []string
	bExample  string
	bLib      bool
	bEnv      []string
)

var buildCmd = &cobra.Command{
	Use:   "build [dir...]",
	Short: "Build crates as dynamic libraries",
	Long: `Build one or more crates as cdylibs via cargo and print the artifact paths.

With no directory, builds the crate in the working directory. --lib and
--example build the host crate's own library or a named example, with
features auto-discovered from its manifest.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringSliceVar(&bFeatures, "features", nil, "explicit feature set (disables defaults)")
	buildCmd.Flags().StringVar(&bExample, "example", "", "build this example binary instead")
	buildCmd.Flags().BoolVar(&bLib, "lib", false, "build the host crate's own library")
	buildCmd.Flags().StringArrayVar(&bEnv, "env", nil, "extra build-flag env override (KEY=VALUE)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	color := output.UseColor()

	env, err := mergeEnv(cfg.Build.Env, bEnv)
	if err != nil {
		return err
	}

	c := cargo.New(verbose)
	c.Env = env

	// --lib / --example build the host crate in the working directory.
	switch {
	case bLib:
		path, err := c.BuildSelfCdylib(ctx)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case bExample != "":
		path, err := c.BuildExample(ctx, bExample)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	features := bFeatures
	if features == nil && len(cfg.Build.Features) > 0 {
		features = cfg.Build.Features
	}

	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	projects := make([]*project.Project, len(dirs))
	for i, dir := range dirs {
		projects[i] = &project.Project{Name: dir, Dir: dir, Features: features}
	}

	// Single project: build inline so diagnostics stay ordered.
	if len(projects) == 1 {
		path, err := c.BuildCdylib(ctx, projects[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	limit := int64(cfg.Build.Parallel)
	if limit < 1 {
		limit = 1
	}

	outcomes := c.BuildEach(ctx, projects, limit)
	failed := 0
	for i, out := range outcomes {
		if out.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", output.Red("fail", color), projects[i].Name, out.Err)
			continue
		}
		fmt.Printf("%s %s\n", output.Dimmed(projects[i].Name, color), out.Path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d builds failed", failed, len(projects))
	}
	return nil
}

// mergeEnv overlays --env KEY=VALUE flags onto config-file env defaults.
func mergeEnv(base map[string]string, flags []string) (map[string]string, error) {
	if len(base) == 0 && len(flags) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(base)+len(flags))
	for k, v := range base {
		env[k] = v
	}
	for _, kv := range flags {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --env value %q (want KEY=VALUE)", kv)
		}
		env[k] = v
	}
	return env, nil
}
