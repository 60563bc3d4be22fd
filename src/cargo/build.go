package cargo

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/Summpot/test-cdylib/src/features"
	"github.com/Summpot/test-cdylib/src/project"
	"golang.org/x/sync/semaphore"
)

// BuildCdylib compiles the project's crate as a dynamic library and
// returns the path of the produced artifact. The build runs in the
// project directory with its own target directory, so concurrent builds
// of different projects never collide.
func (c *Cargo) BuildCdylib(ctx context.Context, proj *project.Project) (string, error) {
	args := buildArgs(SupportsOffline(ctx), proj.Features)
	env := c.buildEnv(filepath.Join(proj.Dir, "target"))

	res, err := c.run(ctx, proj.Dir, args, env)
	if err != nil {
		return "", err
	}
	return parseOutput(res, c.stderr())
}

// BuildSelfCdylib compiles the host crate's own library (`--lib`) in the
// current directory, enabling whatever default features the manifest
// discovers.
func (c *Cargo) BuildSelfCdylib(ctx context.Context) (string, error) {
	args := append(buildArgs(SupportsOffline(ctx), features.Find(".")), "--lib")

	res, err := c.run(ctx, "", args, c.buildEnv(""))
	if err != nil {
		return "", err
	}
	return parseOutput(res, c.stderr())
}

// BuildExample compiles the named example binary in the current
// directory, enabling whatever default features the manifest discovers.
func (c *Cargo) BuildExample(ctx context.Context, name string) (string, error) {
	args := append(buildArgs(SupportsOffline(ctx), features.Find(".")), "--example", name)

	res, err := c.run(ctx, "", args, c.buildEnv(""))
	if err != nil {
		return "", err
	}
	return parseOutput(res, c.stderr())
}

// Outcome is one project's result from BuildEach.
type Outcome struct {
	Path string
	Err  error
}

// BuildEach builds several projects concurrently, at most limit at a
// time. Each project must use its own directory; the driver imposes no
// locking beyond that isolation. Outcomes are positionally aligned with
// the input slice.
func (c *Cargo) BuildEach(ctx context.Context, projects []*project.Project, limit int64) []Outcome {
	if limit < 1 {
		limit = 1
	}

	outcomes := make([]Outcome, len(projects))
	sem := semaphore.NewWeighted(limit)
	var wg sync.WaitGroup

	for i, proj := range projects {
		if err := sem.Acquire(ctx, 1); err != nil {
			outcomes[i] = Outcome{Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, proj *project.Project) {
			defer wg.Done()
			defer sem.Release(1)

			artifact, err := c.BuildCdylib(ctx, proj)
			outcomes[i] = Outcome{Path: artifact, Err: err}
		}(i, proj)
	}

	wg.Wait()
	return outcomes
}
