// Publisher pushes the generated data documents to the GitHub Pages
// repository through the Contents API. Run it after a successful compose;
// it is a separate binary so CI can gate it independently.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

var dataFiles = []string{
	"assets.json",
	"statistics.json",
	"infra-projects.json",
	"upcoming-assets.json",
	"risks.json",
	"budget.json",
	"sync-info.json",
	"dashboard-data.json",
}

func main() {
	token := os.Getenv("GITHUB_TOKEN")
	repo := os.Getenv("PAGES_REPO")
	branch := os.Getenv("PAGES_BRANCH")
	dataDir := os.Getenv("DATA_DIR")
	if branch == "" {
		branch = "main"
	}
	if dataDir == "" {
		dataDir = "data"
	}

	if token == "" || repo == "" {
		fmt.Println("GITHUB_TOKEN and PAGES_REPO are required")
		os.Exit(1)
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok {
		fmt.Printf("PAGES_REPO must be owner/name, got %q\n", repo)
		os.Exit(1)
	}

	fmt.Printf("Publishing %s to %s@%s...\n", dataDir, repo, branch)

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	failed := 0
	for _, file := range dataFiles {
		content, err := os.ReadFile(filepath.Join(dataDir, file))
		if os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not generated this run)\n", file)
			continue
		}
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", file, err)
			failed++
			continue
		}

		if err := pushFile(ctx, client, owner, name, branch, "data/"+file, content); err != nil {
			fmt.Printf("Failed to publish %s: %v\n", file, err)
			failed++
			continue
		}
		fmt.Printf("Published %s\n", file)
	}

	if failed > 0 {
		fmt.Printf("Publisher finished with %d failures\n", failed)
		os.Exit(1)
	}
	fmt.Println("Publisher finished successfully.")
}

// pushFile creates or updates one file on the target branch. The Contents
// API needs the current blob SHA for updates, so look it up first.
func pushFile(ctx context.Context, client *github.Client, owner, repo, branch, path string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("chore: update %s (%s)", filepath.Base(path), time.Now().Format("2006-01-02 15:04"))),
		Content: content,
		Branch:  github.String(branch),
	}

	existing, _, _, err := client.Repositories.GetContents(ctx, owner, repo, path,
		&github.RepositoryContentGetOptions{Ref: branch})
	if err == nil && existing != nil {
		opts.SHA = existing.SHA
	}

	_, _, err = client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	return err
}
