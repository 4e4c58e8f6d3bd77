// ABOUTME: Subcommand handlers for the newsdesk CLI
// ABOUTME: Every command except register requires a successful login

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/2389/newsdesk/internal/auth"
	"github.com/2389/newsdesk/internal/news"
)

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "headlines":
		return a.withLogin(ctx, args, a.cmdHeadlines)
	case "articles":
		return a.withLogin(ctx, args, a.cmdArticles)
	case "favorite":
		return a.withLogin(ctx, args, a.cmdFavorite)
	case "saved":
		return a.withLogin(ctx, args, a.cmdSaved)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	username, password, err := a.credentials()
	if err != nil {
		return err
	}

	err = a.creds.Register(ctx, username, password)
	switch {
	case errors.Is(err, auth.ErrAlreadyExists):
		return errors.New("username is already taken")
	case err != nil:
		return err
	}

	color.New(color.FgGreen).Fprintf(a.out, "Registration successful! You can now log in as %s.\n", username)
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	return a.withLogin(ctx, args, func(ctx context.Context, _ []string) error {
		account := auth.MustFromContext(ctx)
		color.New(color.FgGreen).Fprintf(a.out, "Login successful. Welcome, %s!\n", account.Username)
		return nil
	})
}

// withLogin authenticates and runs fn with the account attached to ctx.
func (a *app) withLogin(ctx context.Context, args []string, fn func(context.Context, []string) error) error {
	username, password, err := a.credentials()
	if err != nil {
		return err
	}

	account, err := a.creds.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	return fn(auth.WithAccount(ctx, account), args)
}

func (a *app) cmdHeadlines(ctx context.Context, args []string) error {
	// Supports both "--from value" and "--from=value" formats
	var category, from string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--from" || arg == "-f":
			if i+1 >= len(args) {
				return fmt.Errorf("--from requires a value")
			}
			from = args[i+1]
			i++
		case strings.HasPrefix(arg, "--from="):
			from = strings.TrimPrefix(arg, "--from=")
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag: %s", arg)
		case category == "":
			category = arg
		default:
			return fmt.Errorf("unexpected argument: %s", arg)
		}
	}

	if category == "" {
		return fmt.Errorf("usage: newsdesk headlines <category> [--from FILE|-]")
	}

	var fetcher news.Fetcher
	if from != "" {
		fetcher = a.payloadSource(from)
	}

	payload, err := news.NewService(a.cache, fetcher, a.logger).Headlines(ctx, category)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, payload)
	return nil
}

// payloadSource reads an upstream payload from a file, or from stdin for "-".
func (a *app) payloadSource(from string) news.Fetcher {
	return news.FetcherFunc(func(_ context.Context, _ string) (string, error) {
		var data []byte
		var err error
		if from == "-" {
			data, err = io.ReadAll(a.in)
		} else {
			data, err = os.ReadFile(from)
		}
		if err != nil {
			return "", fmt.Errorf("reading payload: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	})
}

// cachedArticles returns the articles of category's fresh cached payload.
func (a *app) cachedArticles(ctx context.Context, category string) ([]news.Article, error) {
	category = news.NormalizeCategory(category)
	payload, ok := a.cache.Fresh(ctx, category)
	if !ok {
		return nil, fmt.Errorf("no fresh headlines cached for %q; run: newsdesk headlines %s --from FILE", category, category)
	}
	return news.ParseArticles(payload)
}

func (a *app) cmdArticles(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: newsdesk articles <category>")
	}

	articles, err := a.cachedArticles(ctx, args[0])
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(a.out, "No articles in the cached headlines.")
		return nil
	}

	for i, article := range articles {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, article.Title)
	}
	return nil
}

func (a *app) cmdFavorite(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: newsdesk favorite <category> <n>")
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid article number %q", args[1])
	}

	articles, err := a.cachedArticles(ctx, args[0])
	if err != nil {
		return err
	}
	if n < 1 || n > len(articles) {
		return fmt.Errorf("article number %d out of range (1-%d)", n, len(articles))
	}

	article := articles[n-1]
	if a.favorites.SaveArticle(ctx, article) {
		color.New(color.FgGreen).Fprintf(a.out, "Article saved: %s\n", article.Title)
	} else {
		color.New(color.FgYellow).Fprintln(a.out, "This article is already in your favorites.")
	}
	return nil
}

func (a *app) cmdSaved(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	saved, err := a.favorites.ListAll(ctx)
	if err != nil {
		return err
	}

	if len(saved) == 0 {
		fmt.Fprintln(a.out, "You have no saved articles.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSAVED\tTITLE\tURL")
	for _, s := range saved {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.SavedAt.Local().Format("2006-01-02 15:04"), s.Title, s.URL)
	}
	return w.Flush()
}
