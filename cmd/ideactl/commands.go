package main

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/queries/ideaqueries"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/htmlsanitize"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/resourcekind"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/domain/models"
	"github.com/spf13/pflag"
)

// newFlags returns a subcommand flag set that reports parse errors as
// usage errors.
func newFlags(e *env, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("ideactl "+name, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usagef("%v", err)
	}
	return nil
}

// lookupIdea parses the single <id> argument and finds the idea.
func lookupIdea(s *ideastore.Store, args []string) (models.Idea, error) {
	if len(args) != 1 {
		return models.Idea{}, usagef("expected exactly one idea id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return models.Idea{}, usagef("invalid idea id %q", args[0])
	}
	idea, ok := s.ByID(id)
	if !ok {
		return models.Idea{}, fmt.Errorf("idea %d not found", id)
	}
	return idea, nil
}

func writeIdeaTable(e *env, ideas []models.Idea) error {
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDEPARTMENT\tTITLE")
	for _, idea := range ideas {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", idea.ID, idea.Date, idea.Department, idea.Title)
	}
	return tw.Flush()
}

func runList(e *env, args []string) error {
	fs := newFlags(e, "list")
	q := url.Values{}
	var department, tool, useCase, tag, search, sort string
	fs.StringVar(&department, "department", "", "only ideas from this department")
	fs.StringVar(&tool, "ai-tool", "", "only ideas using this AI tool")
	fs.StringVar(&useCase, "use-case", "", "only ideas with this use case")
	fs.StringVar(&tag, "tag", "", "only ideas with this tag")
	fs.StringVarP(&search, "search", "q", "", "free-text search over title, description, author and tags")
	fs.StringVar(&sort, "sort", string(ideaqueries.SortNewest), "newest or oldest")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usagef("unexpected argument %q", fs.Arg(0))
	}

	s, err := e.load()
	if err != nil {
		return err
	}

	q.Set(ideaqueries.ParamDepartment, department)
	q.Set(ideaqueries.ParamAITool, tool)
	q.Set(ideaqueries.ParamUseCase, useCase)
	q.Set(ideaqueries.ParamTag, tag)
	q.Set(ideaqueries.ParamSearch, search)
	q.Set(ideaqueries.ParamSort, sort)

	ideas := ideaqueries.Filter(s.All(), ideaqueries.CriteriaFromQuery(q))
	if len(ideas) == 0 {
		fmt.Fprintln(e.stdout, "No ideas found")
		return nil
	}
	return writeIdeaTable(e, ideas)
}

func runShow(e *env, args []string) error {
	fs := newFlags(e, "show")
	if err := parse(fs, args); err != nil {
		return err
	}
	s, err := e.load()
	if err != nil {
		return err
	}
	idea, err := lookupIdea(s, fs.Args())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", label, value)
		}
	}
	row("ID", strconv.Itoa(idea.ID))
	row("Title", idea.Title)
	row("Author", idea.Author)
	row("Email", idea.Email)
	row("Department", idea.Department)
	row("Date", idea.Date)
	row("AI tools", strings.Join(idea.AITools, ", "))
	row("Use cases", strings.Join(idea.UseCases, ", "))
	row("Tags", strings.Join(ideaqueries.DisplayTags(idea), ", "))
	row("Resource", idea.ResourceURL)
	row("Kind", string(resourcekind.ForIdea(idea)))
	if err := tw.Flush(); err != nil {
		return err
	}

	if text := htmlsanitize.PlainText(idea.Description); text != "" {
		fmt.Fprintln(e.stdout)
		fmt.Fprintln(e.stdout, text)
	}
	return nil
}

func runRelated(e *env, args []string) error {
	fs := newFlags(e, "related")
	limit := fs.Int("limit", ideaqueries.DefaultRelatedLimit, "maximum number of related ideas")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *limit <= 0 {
		return usagef("--limit must be positive")
	}
	s, err := e.load()
	if err != nil {
		return err
	}
	idea, err := lookupIdea(s, fs.Args())
	if err != nil {
		return err
	}

	related := ideaqueries.Related(s.All(), idea, *limit)
	if len(related) == 0 {
		fmt.Fprintln(e.stdout, "No related ideas")
		return nil
	}
	return writeIdeaTable(e, related)
}

func runOptions(e *env, args []string) error {
	fs := newFlags(e, "options")
	if err := parse(fs, args); err != nil {
		return err
	}
	s, err := e.load()
	if err != nil {
		return err
	}

	opts := ideaqueries.DeriveOptions(s.All())
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	for _, section := range []struct {
		title  string
		labels []string
	}{
		{"Departments", opts.Departments},
		{"AI tools", opts.AITools},
		{"Use cases", opts.UseCases},
		{"Tags", opts.Tags},
	} {
		fmt.Fprintf(tw, "%s:\n", section.title)
		for _, c := range ideaqueries.Choices(section.labels) {
			fmt.Fprintf(tw, "  %s\t%s\n", c.Value, c.Label)
		}
	}
	return tw.Flush()
}

func runKind(e *env, args []string) error {
	fs := newFlags(e, "kind")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usagef("expected exactly one URL")
	}

	plan := resourcekind.PlanFor(fs.Arg(0))
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "kind:\t%s\n", plan.Kind)
	embed := string(plan.Embed)
	if embed == "" {
		embed = "none"
	}
	fmt.Fprintf(tw, "embed:\t%s\n", embed)
	if plan.Message != "" {
		fmt.Fprintf(tw, "message:\t%s\n", plan.Message)
	}
	fmt.Fprintf(tw, "open:\t%t\n", plan.ShowOpen)
	fmt.Fprintf(tw, "download:\t%t\n", plan.ShowDownload)
	return tw.Flush()
}

func runCheck(e *env, args []string) error {
	fs := newFlags(e, "check")
	if err := parse(fs, args); err != nil {
		return err
	}
	s, err := e.load()
	if err != nil {
		return err
	}
	for _, w := range s.Warnings() {
		fmt.Fprintf(e.stderr, "warning: %s\n", w)
	}
	fmt.Fprintf(e.stdout, "ok: %d ideas, %d warnings\n", s.Len(), len(s.Warnings()))
	return nil
}
