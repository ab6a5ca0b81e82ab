package news

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/edicola-dev/edicola/lib/news"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	submitCmd = &cobra.Command{
		Use:   "submit [authorID] [title] [target]",
		Short: "Submits a new story (target is a URL or 'text://...' for a text post)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			authorID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("authorID must be a number: %w", err)
			}
			categoryID, err := cmd.Flags().GetInt64("category")
			if err != nil {
				return err
			}
			sub, err := rpcNews.CreateSubmission(args[1], args[2], authorID, categoryID)
			if err != nil {
				return err
			}
			if sub == nil {
				fmt.Println("submission rejected (recent submission with the same url exists)")
				return nil
			}
			fmt.Printf("submitted successfully, id=%d\n", sub.ID)
			return nil
		},
	}
	editCmd = &cobra.Command{
		Use:   "edit [id] [title] [target]",
		Short: "Edits title and target of an existing submission",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}
			if ok, err := rpcNews.UpdateSubmission(id, args[1], args[2]); err != nil {
				return err
			} else if !ok {
				fmt.Println("no submission with that id")
			} else {
				fmt.Println("edit successfully")
			}
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [id]",
		Short: "Deletes a submission and removes it from all listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}
			if ok, err := rpcNews.DestroySubmission(id); err != nil {
				return err
			} else if !ok {
				fmt.Println("no submission with that id")
			} else {
				fmt.Println("delete successfully")
			}
			return nil
		},
	}
	voteCmd = &cobra.Command{
		Use:   "vote [id] [voterID] [up|down]",
		Short: "Casts a vote on a submission",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be a number: %w", err)
			}
			voterID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("voterID must be a number: %w", err)
			}
			rank, rejection, err := rpcNews.Vote(id, voterID, news.Direction(args[2]))
			if err != nil {
				return err
			}
			if rejection != news.RejectionNone {
				fmt.Printf("vote rejected: %s\n", rejection)
				return nil
			}
			fmt.Printf("vote accepted, new rank=%f\n", rank)
			return nil
		},
	}
	showCmd = &cobra.Command{
		Use:   "show [id...]",
		Short: "Shows one or more submissions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, len(args))
			for i, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("id must be a number: %w", err)
				}
				ids[i] = id
			}
			viewerID, err := cmd.Flags().GetInt64("viewer")
			if err != nil {
				return err
			}
			subs, err := rpcNews.Find(ids, news.FindOptions{ViewerID: viewerID})
			if err != nil {
				return err
			}
			renderSubmissions(subs)
			return nil
		},
	}
	urlCmd = &cobra.Command{
		Use:   "check-url [url]",
		Short: "Checks if a url was recently submitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id, ok, err := rpcNews.ResolveURL(args[0]); err != nil {
				return err
			} else {
				fmt.Printf("url=%s, found=%v, id=%d\n", args[0], ok, id)
			}
			return nil
		},
	}
	topCmd = &cobra.Command{
		Use:   "top",
		Short: "Shows the top listing (ordered by rank)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(cmd, rpcNews.TopListing)
		},
	}
	latestCmd = &cobra.Command{
		Use:   "latest",
		Short: "Shows the latest listing (ordered by creation time)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(cmd, rpcNews.LatestListing)
		},
	}
	savedCmd = &cobra.Command{
		Use:   "saved [userID]",
		Short: "Shows the submissions a user voted up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserListing(cmd, args[0], rpcNews.SavedListing)
		},
	}
	postedCmd = &cobra.Command{
		Use:   "posted [userID]",
		Short: "Shows the submissions a user posted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserListing(cmd, args[0], rpcNews.PostedListing)
		},
	}
)

func init() {
	submitCmd.Flags().Int64("category", 0, "Category id for the submission (0 = uncategorized)")
	showCmd.Flags().Int64("viewer", 0, "Attach this user's vote state to the result")
	for _, cmd := range []*cobra.Command{topCmd, latestCmd} {
		cmd.Flags().Int64("category", 0, "Restrict the listing to a category (0 = global)")
		cmd.Flags().Int("start", 0, "Offset into the listing")
		cmd.Flags().Int("count", 30, "Number of entries to show")
	}
	for _, cmd := range []*cobra.Command{savedCmd, postedCmd} {
		cmd.Flags().Int("start", 0, "Offset into the listing")
		cmd.Flags().Int("count", 30, "Number of entries to show")
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

type listingFn func(scopeID int64, start, count int) ([]int64, int64, error)

// runListing fetches a page of a category scoped listing and renders it
func runListing(cmd *cobra.Command, fetch listingFn) error {
	categoryID, err := cmd.Flags().GetInt64("category")
	if err != nil {
		return err
	}
	return fetchAndRender(cmd, categoryID, fetch)
}

// runUserListing fetches a page of a user scoped listing and renders it
func runUserListing(cmd *cobra.Command, userArg string, fetch listingFn) error {
	userID, err := strconv.ParseInt(userArg, 10, 64)
	if err != nil {
		return fmt.Errorf("userID must be a number: %w", err)
	}
	return fetchAndRender(cmd, userID, fetch)
}

func fetchAndRender(cmd *cobra.Command, scopeID int64, fetch listingFn) error {
	start, err := cmd.Flags().GetInt("start")
	if err != nil {
		return err
	}
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}

	ids, total, err := fetch(scopeID, start, count)
	if err != nil {
		return err
	}

	subs, err := rpcNews.Find(ids, news.FindOptions{})
	if err != nil {
		return err
	}

	renderSubmissions(subs)
	fmt.Printf("showing %d of %d submissions\n", len(subs), total)
	return nil
}

// renderSubmissions prints submissions as a table
func renderSubmissions(subs []*news.Submission) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Source", "Author", "Up", "Down", "Score", "Rank", "Age"})

	for _, sub := range subs {
		source := sub.Domain()
		if sub.IsTextual() {
			source = "(text)"
		}
		author := sub.AuthorName
		if author == "" {
			author = strconv.FormatInt(sub.AuthorID, 10)
		}
		title := sub.Title
		if sub.ViewerVote == news.VoteStateUp {
			title = "▲ " + title
		} else if sub.ViewerVote == news.VoteStateDown {
			title = "▼ " + title
		}
		t.AppendRow(table.Row{
			sub.ID,
			title,
			source,
			author,
			sub.UpCount,
			sub.DownCount,
			fmt.Sprintf("%.1f", sub.Score),
			fmt.Sprintf("%.1f", sub.Rank),
			formatAge(sub.CTime),
		})
	}

	t.Render()
}

// formatAge renders the age of a submission in a compact human readable form
func formatAge(ctime int64) string {
	age := time.Since(time.Unix(ctime, 0))
	switch {
	case age < time.Minute:
		return "now"
	case age < time.Hour:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
}
