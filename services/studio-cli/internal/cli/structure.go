package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"courseplatform/pkg/coursetree"
	"courseplatform/services/studio-cli/internal/draft"

	"github.com/spf13/cobra"
)

func newStructureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "structure",
		Aliases: []string{"st"},
		Short:   "Edit the session and lesson tree of a course",
	}
	cmd.AddCommand(
		newPullCmd(app),
		newShowCmd(app),
		newAddSessionCmd(app),
		newAddLessonCmd(app),
		newRenameCmd(app),
		newMoveSessionCmd(app),
		newMoveLessonCmd(app),
		newDeleteSessionCmd(app),
		newDeleteLessonCmd(app),
		newSaveCmd(app),
	)
	return cmd
}

// edit открывает черновик в редакторе, применяет fn и сохраняет результат.
func (a *App) edit(cmd *cobra.Command, courseID string, fn func(t *coursetree.Tree) error) error {
	snap, err := a.drafts.Load(courseID)
	if err != nil {
		return err
	}
	t := coursetree.New(snap, a.Tokens)
	if err := fn(t); err != nil {
		return err
	}
	out := t.Snapshot()
	if err := a.drafts.Save(courseID, out); err != nil {
		return err
	}
	printTree(cmd.OutOrStdout(), out)
	return nil
}

// sessionRef ищет сессию по позиции (с нуля) или по id.
func sessionRef(t *coursetree.Tree, ref string) (coursetree.Session, error) {
	sessions := t.State().Sessions
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 0 || i >= len(sessions) {
			return coursetree.Session{}, fmt.Errorf("no session at position %d", i)
		}
		return sessions[i], nil
	}
	for _, s := range sessions {
		if s.ID.String() == ref {
			return s, nil
		}
	}
	return coursetree.Session{}, fmt.Errorf("%w: %s", coursetree.ErrUnknownSession, ref)
}

func lessonRef(s coursetree.Session, ref string) (coursetree.Lesson, error) {
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 0 || i >= len(s.Lessons) {
			return coursetree.Lesson{}, fmt.Errorf("no lesson at position %d in %q", i, s.Title)
		}
		return s.Lessons[i], nil
	}
	for _, l := range s.Lessons {
		if l.ID.String() == ref {
			return l, nil
		}
	}
	return coursetree.Lesson{}, fmt.Errorf("%w: %s", coursetree.ErrUnknownLesson, ref)
}

func position(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid position %q", arg)
	}
	return i, nil
}

func printTree(w io.Writer, snap coursetree.Snapshot) {
	if len(snap.Sessions) == 0 {
		fmt.Fprintln(w, "(no sessions)")
		return
	}
	for i, s := range snap.Sessions {
		fmt.Fprintf(w, "%d. %s  [%s]\n", i, s.Title, s.ID)
		for j, l := range s.Lessons {
			dur := "-"
			if l.Duration != nil {
				dur = fmt.Sprintf("%dm", *l.Duration)
			}
			fmt.Fprintf(w, "   %d.%d %s  %s %s  [%s]\n", i, j, l.Title, l.Type, dur, l.ID)
		}
	}
}

func newPullCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "pull <course-id>",
		Short: "Download the saved structure into a local draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.drafts.Load(args[0]); err == nil && !force {
				return errors.New("a local draft already exists, use --force to replace it")
			} else if err != nil && !errors.Is(err, draft.ErrNoDraft) && !force {
				return err
			}

			snap, err := app.client().GetStructure(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.drafts.Save(args[0], snap); err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), snap)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the local draft")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id>",
		Short: "Print the local draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.drafts.Load(args[0])
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func newAddSessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-session <course-id> <title>",
		Short: "Append a new session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				t.AddSession(args[1])
				return nil
			})
		},
	}
}

func newAddLessonCmd(app *App) *cobra.Command {
	var (
		lessonType string
		duration   int
	)
	cmd := &cobra.Command{
		Use:   "add-lesson <course-id> <session> <title>",
		Short: "Append a lesson to a session (by position or id)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := coursetree.ParseLessonType(lessonType)
			if err != nil {
				return err
			}
			if duration < 0 {
				return fmt.Errorf("duration must not be negative")
			}

			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				s, err := sessionRef(t, args[1])
				if err != nil {
					return err
				}
				id, err := t.AddLesson(s.ID, args[2])
				if err != nil {
					return err
				}
				patch := coursetree.LessonPatch{Type: &typ}
				if cmd.Flags().Changed("duration") {
					patch.Duration = &duration
				}
				return t.UpdateLesson(s.ID, id, patch)
			})
		},
	}
	cmd.Flags().StringVar(&lessonType, "type", string(coursetree.LessonVideo), "VIDEO or READING")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	return cmd
}

func newRenameCmd(app *App) *cobra.Command {
	var lesson string
	cmd := &cobra.Command{
		Use:   "rename <course-id> <session> <title>",
		Short: "Rename a session, or one of its lessons with --lesson",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[2])
			if title == "" {
				return errors.New("title must not be empty")
			}
			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				s, err := sessionRef(t, args[1])
				if err != nil {
					return err
				}
				if lesson == "" {
					return t.RenameSession(s.ID, title)
				}
				l, err := lessonRef(s, lesson)
				if err != nil {
					return err
				}
				return t.UpdateLesson(s.ID, l.ID, coursetree.LessonPatch{Title: &title})
			})
		},
	}
	cmd.Flags().StringVar(&lesson, "lesson", "", "lesson position or id inside the session")
	return cmd
}

func newMoveSessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move-session <course-id> <from> <to>",
		Short: "Move a session to another position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := position(args[1])
			if err != nil {
				return err
			}
			to, err := position(args[2])
			if err != nil {
				return err
			}
			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				if n := len(t.State().Sessions); from >= n || to >= n {
					return fmt.Errorf("positions must be below %d", n)
				}
				t.MoveSession(from, coursetree.DropAt(to))
				return nil
			})
		},
	}
}

func newMoveLessonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move-lesson <course-id> <session> <from> <to>",
		Short: "Reorder lessons inside one session",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := position(args[2])
			if err != nil {
				return err
			}
			to, err := position(args[3])
			if err != nil {
				return err
			}
			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				s, err := sessionRef(t, args[1])
				if err != nil {
					return err
				}
				if n := len(s.Lessons); from >= n || to >= n {
					return fmt.Errorf("positions must be below %d", n)
				}
				return t.MoveLesson(s.ID, from, coursetree.DropAt(to))
			})
		},
	}
}

func newDeleteSessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-session <course-id> <session>",
		Short: "Remove a session together with its lessons",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				s, err := sessionRef(t, args[1])
				if err != nil {
					return err
				}
				return t.DeleteSession(s.ID)
			})
		},
	}
}

func newDeleteLessonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-lesson <course-id> <session> <lesson>",
		Short: "Remove a lesson",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.edit(cmd, args[0], func(t *coursetree.Tree) error {
				s, err := sessionRef(t, args[1])
				if err != nil {
					return err
				}
				l, err := lessonRef(s, args[2])
				if err != nil {
					return err
				}
				return t.DeleteLesson(s.ID, l.ID)
			})
		},
	}
}

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save <course-id>",
		Short: "Send the draft to the server; the draft is replaced by the saved tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.drafts.Load(args[0])
			if err != nil {
				return err
			}
			res, err := app.client().SaveStructure(cmd.Context(), args[0], snap)
			if err != nil {
				return err
			}
			if err := app.drafts.Save(args[0], res.Structure); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (created %d, updated %d, deleted %d)\n", res.Message, res.Created, res.Updated, res.Deleted)
			printTree(out, res.Structure)
			return nil
		},
	}
}
