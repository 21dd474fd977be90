// Package gitdiff summarizes unified diff output produced by git.
package gitdiff

import (
	"fmt"
	"regexp"
	"strings"
)

var diffHeaderRe = regexp.MustCompile(`^diff --git\s+([^\s]+)\s+([^\s]+)$`)

// FileStat counts the changed lines of a single file.
type FileStat struct {
	Path       string
	Additions  int
	Deletions  int
	IsNewFile  bool
	IsDeleted  bool
	IsBinary   bool
	ChangeType string // addition, deletion, modification
}

// Stat parses git diff output into per-file line counts, in diff order.
func Stat(diffOutput string) []FileStat {
	var (
		stats   []FileStat
		current *FileStat
		inHunk  bool
	)

	flush := func() {
		if current != nil {
			current.ChangeType = changeType(current.Additions, current.Deletions)
			stats = append(stats, *current)
		}
	}

	for _, line := range strings.Split(diffOutput, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			flush()
			current = &FileStat{}
			inHunk = false
			// Paths may carry a single-letter prefix (a/, b/, c/, i/, w/)
			// or none when diff.noprefix is set.
			if matches := diffHeaderRe.FindStringSubmatch(line); len(matches) >= 3 {
				current.Path = stripGitDiffPrefix(matches[2])
			}
		case current == nil:
			continue
		case !inHunk && strings.HasPrefix(line, "new file mode"):
			current.IsNewFile = true
		case !inHunk && strings.HasPrefix(line, "deleted file mode"):
			current.IsDeleted = true
		case !inHunk && strings.HasPrefix(line, "Binary files "):
			current.IsBinary = true
		case strings.HasPrefix(line, "@@"):
			inHunk = true
		case !inHunk:
			continue
		case strings.HasPrefix(line, "+"):
			current.Additions++
		case strings.HasPrefix(line, "-"):
			current.Deletions++
		}
	}
	flush()

	return stats
}

// Summary formats stats like the last line of git diff --stat.
func Summary(stats []FileStat) string {
	var additions, deletions int
	for _, s := range stats {
		additions += s.Additions
		deletions += s.Deletions
	}

	return fmt.Sprintf("%d %s changed, %d %s(+), %d %s(-)",
		len(stats), plural(len(stats), "file", "files"),
		additions, plural(additions, "insertion", "insertions"),
		deletions, plural(deletions, "deletion", "deletions"),
	)
}

func changeType(additions, deletions int) string {
	switch {
	case deletions == 0 && additions > 0:
		return "addition"
	case additions == 0 && deletions > 0:
		return "deletion"
	default:
		return "modification"
	}
}

func stripGitDiffPrefix(path string) string {
	if len(path) > 2 && path[1] == '/' {
		return path[2:]
	}
	return path
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
