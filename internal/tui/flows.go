package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/cashmeredev/berrysnip/internal/apperror"
	"github.com/cashmeredev/berrysnip/internal/model"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func banner(text string) {
	fmt.Println()
	fmt.Println(bannerStyle.Render(text))
	fmt.Println()
}

func rule() {
	fmt.Println(ruleStyle.Render(strings.Repeat("─", 50)))
}

func requireNonBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// RunAdd is the line-oriented add flow. Title and content are required (the
// form re-prompts on blank input); aborting the form cancels the add. Also
// used directly by the `berrysnip add` subcommand.
func (a *App) RunAdd(ctx context.Context) error {
	banner("Add New Snippet")

	var title, language, tags, content string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(requireNonBlank("title")).
				Value(&title),
			huh.NewInput().
				Title("Language (optional)").
				Value(&language),
			huh.NewInput().
				Title("Tags (comma-separated, optional)").
				Value(&tags),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Content").
				Validate(requireNonBlank("content")).
				Value(&content),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println(failStyle.Render("Add cancelled"))
			return nil
		}
		return fmt.Errorf("tui: add form: %w", err)
	}

	snippet, err := a.svc.Create(ctx, strings.TrimSpace(title), content,
		strings.TrimSpace(language), strings.TrimSpace(tags))
	if err != nil {
		return err
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("Snippet #%d created successfully!", snippet.ID)))
	return nil
}

// runEdit pre-fills the form with the current record. Content is only
// replaced when the user explicitly opts in.
func (a *App) runEdit(ctx context.Context, id int64) error {
	snippet, err := a.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(failStyle.Render("Snippet not found"))
			return nil
		}
		return err
	}

	banner(fmt.Sprintf("Edit Snippet #%d", id))

	title := snippet.Title
	language := snippet.Language
	tags := snippet.Tags
	editContent := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(requireNonBlank("title")).
				Value(&title),
			huh.NewInput().
				Title("Language").
				Value(&language),
			huh.NewInput().
				Title("Tags").
				Value(&tags),
			huh.NewConfirm().
				Title("Edit content?").
				Affirmative("Yes").
				Negative("No").
				Value(&editContent),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println(failStyle.Render("Edit cancelled"))
			return nil
		}
		return fmt.Errorf("tui: edit form: %w", err)
	}

	content := snippet.Content
	if editContent {
		newContent := snippet.Content
		contentForm := huh.NewForm(huh.NewGroup(
			huh.NewText().
				Title("Content").
				Value(&newContent),
		))
		if err := contentForm.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println(failStyle.Render("Edit cancelled"))
				return nil
			}
			return fmt.Errorf("tui: content form: %w", err)
		}
		// A blanked-out textarea keeps the old content, it does not erase it.
		if strings.TrimSpace(newContent) != "" {
			content = newContent
		}
	}

	if err := a.svc.Update(ctx, id, strings.TrimSpace(title), content,
		strings.TrimSpace(language), strings.TrimSpace(tags)); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(failStyle.Render("Snippet not found"))
			return nil
		}
		return err
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("Snippet #%d updated successfully!", id)))
	return nil
}

// runDelete shows the record and asks for explicit confirmation; No is the
// default answer.
func (a *App) runDelete(ctx context.Context, id int64) error {
	snippet, err := a.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(failStyle.Render("Snippet not found"))
			return nil
		}
		return err
	}

	banner(fmt.Sprintf("Delete Snippet #%d", id))
	printSummary(snippet)

	confirmed := false
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Delete this snippet?").
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err := confirm.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			confirmed = false
		} else {
			return fmt.Errorf("tui: delete confirm: %w", err)
		}
	}

	if !confirmed {
		fmt.Println(failStyle.Render("Deletion cancelled"))
		return nil
	}

	if err := a.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(failStyle.Render("Snippet not found"))
			return nil
		}
		return err
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("Snippet #%d deleted!", id)))
	return nil
}

// runView prints the full record and offers a clipboard copy before
// returning to the list.
func (a *App) runView(ctx context.Context, id int64) error {
	snippet, err := a.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			fmt.Println(failStyle.Render("Snippet not found"))
			return nil
		}
		return err
	}

	banner(fmt.Sprintf("Snippet #%d", id))

	fmt.Printf("Title:    %s\n", snippet.Title)
	fmt.Printf("Language: %s\n", snippet.Language)
	fmt.Printf("Tags:     %s\n", snippet.Tags)
	fmt.Printf("Created:  %s\n", snippet.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:  %s\n", snippet.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println("\nContent:")
	rule()
	fmt.Println(snippet.Content)
	rule()

	copyIt := false
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Copy content to clipboard?").
			Affirmative("Yes").
			Negative("Back").
			Value(&copyIt),
	))
	if err := confirm.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("tui: view confirm: %w", err)
	}

	if copyIt {
		if err := a.copier.Copy(snippet.Content); err != nil {
			// A missing helper is reported, never fatal.
			fmt.Println(failStyle.Render(err.Error()))
		} else {
			fmt.Println(okStyle.Render("Copied to clipboard!"))
		}
	}

	return nil
}

func printSummary(s *model.Snippet) {
	fmt.Printf("Title:    %s\n", s.Title)
	fmt.Printf("Language: %s\n", s.Language)
	fmt.Printf("Tags:     %s\n", s.Tags)
	fmt.Println("\nContent preview:")
	rule()
	preview := s.Content
	if len(preview) > 200 {
		preview = preview[:200]
	}
	fmt.Println(preview)
	rule()
}
