package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/viharinalla/student-dashboard/internal/client"
	"github.com/viharinalla/student-dashboard/internal/model"
	"golang.org/x/term"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// ready unwraps a loaded page or explains why it is not ready.
func ready[T any](ctx context.Context, page client.Page[T]) (T, error) {
	switch page.State {
	case client.StateReady:
		return page.Data, nil
	case client.StateError:
		var zero T
		return zero, errors.New(page.Error)
	default:
		var zero T
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, errors.New("page did not finish loading")
	}
}

func noArgs(name string, a *app, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := parseFlags(fs, name, a.stderr, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errUsage
	}
	return nil
}

func runHealth(ctx context.Context, a *app, args []string) error {
	if err := noArgs("health", a, args); err != nil {
		return err
	}
	h, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	tw := newTable(a.stdout)
	fmt.Fprintf(tw, "API\t%s\n", a.cfg.APIURL)
	fmt.Fprintf(tw, "Status\t%s\n", h.Status)
	fmt.Fprintf(tw, "Timestamp\t%s\n", h.Timestamp)
	return tw.Flush()
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email (prompted when empty)")
	name := fs.String("name", "", "display name sent with the login")
	if err := parseFlags(fs, "login [-email addr] [-name name]", a.stderr, args); err != nil {
		return err
	}

	reader := bufio.NewReader(a.stdin)
	if *email == "" {
		fmt.Fprint(a.stderr, "Enter Email: ")
		line, _ := reader.ReadString('\n')
		*email = strings.TrimSpace(line)
	}

	password, err := readPassword(a, reader)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, *email, password, *name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Logged in as %s (%s)\n", user.Name, user.Email)
	return nil
}

// readPassword reads without echo from a terminal, or a plain line otherwise.
func readPassword(a *app, reader *bufio.Reader) (string, error) {
	fmt.Fprint(a.stderr, "Enter Password: ")
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := reader.ReadString('\n')
	fmt.Fprintln(a.stderr)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runLogout(ctx context.Context, a *app, args []string) error {
	if err := noArgs("logout", a, args); err != nil {
		return err
	}
	a.session.Logout(ctx)
	fmt.Fprintln(a.stdout, "Logged out")
	return nil
}

func runWhoami(_ context.Context, a *app, args []string) error {
	if err := noArgs("whoami", a, args); err != nil {
		return err
	}
	user := a.session.User()
	if user == nil {
		return errors.New("not logged in")
	}
	tw := newTable(a.stdout)
	fmt.Fprintf(tw, "ID\t%d\n", user.ID)
	fmt.Fprintf(tw, "Name\t%s\n", user.Name)
	fmt.Fprintf(tw, "Email\t%s\n", user.Email)
	return tw.Flush()
}

func runDashboard(ctx context.Context, a *app, args []string) error {
	if err := noArgs("dashboard", a, args); err != nil {
		return err
	}
	data, err := ready(ctx, a.pages.Dashboard(ctx))
	if err != nil {
		return err
	}

	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.stdout, "Welcome back, %s!\n\n", u.Name)
	}

	tw := newTable(a.stdout)
	fmt.Fprintln(tw, "STAT\tVALUE\tCHANGE")
	for _, s := range data.Stats {
		fmt.Fprintf(tw, "%s\t%v\t%s\n", s.Title, s.Value, s.Change)
	}
	fmt.Fprintln(tw)
	writeCourses(tw, data.Courses)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ASSIGNMENT\tCOURSE\tDUE\tSTATUS")
	for _, as := range data.Assignments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", as.Title, as.Course, as.DueDate, as.Status)
	}
	return tw.Flush()
}

func writeCourses(tw *tabwriter.Writer, courses []model.Course) {
	fmt.Fprintln(tw, "ID\tCOURSE\tPROGRESS\tLESSONS\tDURATION")
	for _, c := range courses {
		fmt.Fprintf(tw, "%d\t%s\t%d%%\t%d/%d\t%s\n", c.ID, c.Title, c.Progress, c.CompletedLessons, c.TotalLessons, c.Duration)
	}
}

func runCourses(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("courses", flag.ContinueOnError)
	q := fs.String("q", "", "case-insensitive title filter")
	if err := parseFlags(fs, "courses [-q filter]", a.stderr, args); err != nil {
		return err
	}

	courses, err := ready(ctx, a.pages.Courses(ctx, *q))
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(a.stdout, "No courses found.")
		return nil
	}
	tw := newTable(a.stdout)
	writeCourses(tw, courses)
	return tw.Flush()
}

func runCourse(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("course", flag.ContinueOnError)
	if err := parseFlags(fs, "course <id>", a.stderr, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	d, err := ready(ctx, a.pages.CourseDetail(ctx, fs.Arg(0)))
	if err != nil {
		return err
	}

	tw := newTable(a.stdout)
	fmt.Fprintf(tw, "Title\t%s\n", d.Title)
	fmt.Fprintf(tw, "Progress\t%d%% (%d/%d lessons)\n", d.Progress, d.CompletedLessons, d.TotalLessons)
	fmt.Fprintf(tw, "Duration\t%s\n", d.Duration)
	fmt.Fprintf(tw, "Description\t%s\n", d.Description)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "\nSyllabus")
	for i, item := range d.Syllabus {
		fmt.Fprintf(a.stdout, "  %d. %s\n", i+1, item)
	}
	fmt.Fprintln(a.stdout, "\nInstructors")
	for _, in := range d.Instructors {
		fmt.Fprintf(a.stdout, "  - %s\n", in.Name)
	}
	return nil
}

func runCommunity(ctx context.Context, a *app, args []string) error {
	if err := noArgs("community", a, args); err != nil {
		return err
	}
	groups, err := ready(ctx, a.pages.Community(ctx))
	if err != nil {
		return err
	}
	tw := newTable(a.stdout)
	fmt.Fprintln(tw, "ID\tGROUP\tMEMBERS")
	for _, g := range groups {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", g.ID, g.Name, g.Members)
	}
	return tw.Flush()
}

func runResources(ctx context.Context, a *app, args []string) error {
	if err := noArgs("resources", a, args); err != nil {
		return err
	}
	resources, err := ready(ctx, a.pages.Resources(ctx))
	if err != nil {
		return err
	}
	tw := newTable(a.stdout)
	fmt.Fprintln(tw, "RESOURCE\tDESCRIPTION\tURL")
	for _, r := range resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Title, r.Desc, r.URL)
	}
	return tw.Flush()
}

func runAttendance(ctx context.Context, a *app, args []string) error {
	if err := noArgs("attendance", a, args); err != nil {
		return err
	}
	overview, err := ready(ctx, a.pages.Attendance(ctx))
	if err != nil {
		return err
	}
	tw := newTable(a.stdout)
	for _, s := range overview.Summary {
		fmt.Fprintf(tw, "%s\t%v\n", s.Label, s.Value)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "DATE\tSTATUS")
	for _, r := range overview.Records {
		fmt.Fprintf(tw, "%s\t%s\n", r.Date, r.Status)
	}
	return tw.Flush()
}
