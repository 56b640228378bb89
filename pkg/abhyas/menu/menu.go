package menu

//go:generate mockgen -source=menu.go -destination=mock_menu_test.go -package=menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikepea/abhyas/pkg/abhyas/links"
	"github.com/mikepea/abhyas/pkg/abhyas/models"
)

var (
	// ErrCancelled is returned when the user cancels a prompt
	ErrCancelled = errors.New("user cancelled the operation")

	// ErrInterrupted is returned when the user interrupts a prompt or the
	// session context is cancelled by a signal
	ErrInterrupted = errors.New("user forcefully quit the operation")

	// ErrLinkRequired and ErrLinkExists are reported by the add link validator
	ErrLinkRequired = errors.New("a link is required")
	ErrLinkExists   = errors.New("duplicate link, enter another link")

	errExit = errors.New("exit")
)

// User facing messages
const (
	msgGoodbye        = "You've successfully quit the application :)"
	msgNoUnsolved     = "No unsolved links, add new links or reset the link status"
	msgNoLinks        = "No Links present in the database :("
	msgNoCompleted    = "No Completed Links :("
	msgNoSkipped      = "No Skipped Links :)"
	msgDuplicate      = "Link already exists, input other link"
	msgNotFound       = "Link no longer exists"
	msgNoMatch        = "No link matches the search"
	msgMarkedComplete = "Successfully marked the link as completed"
	msgSkipped        = "Successfully skipped the link"
	msgDeleted        = "Successfully deleted the link"
	labelSelectOption = "Select your option"
	labelSelectLink   = "Select link or type keywords"
	labelEnterLink    = "Enter the link"
	helpEnterLink     = "enter the link you want to save and hit enter"
)

// Store is the link store the session drives
type Store interface {
	AddLink(url string) error
	DeleteLink(url string) error
	ListURLs() ([]string, error)
	ListAll() ([]links.Link, error)
	ListByStatus(status models.Status) ([]links.Link, error)
	NextIncomplete() (links.Link, bool, error)
	Lookup(url string) (links.Link, error)
	MarkComplete(url string) error
	SkipLink(url string) error
	ResetSkipped() (int64, error)
	ResetCompleted() (int64, error)
	Status() (links.Counts, error)
}

// Prompter reads the user's choices.
// Implementations return ErrCancelled or ErrInterrupted when the user aborts.
type Prompter interface {
	// Choose returns the index of the picked option
	Choose(label string, options []string) (int, error)

	// Search returns the index of the picked item, with incremental filtering.
	// A negative index means the filter matched nothing.
	Search(label string, items []string) (int, error)

	// Input reads a line of text accepted by validate
	Input(label, help string, validate func(string) error) (string, error)
}

// Renderer shows results to the user
type Renderer interface {
	Links(items []links.Link)
	Counts(counts links.Counts)
	Success(msg string)
	Failure(msg string)
}

// Session is the interactive menu loop. Each choice performs at most one
// store call.
type Session struct {
	store  Store
	prompt Prompter
	out    Renderer
}

// NewSession creates a session over store
func NewSession(store Store, prompt Prompter, out Renderer) *Session {
	return &Session{store: store, prompt: prompt, out: out}
}

// Run shows the main menu until the user exits.
// It returns nil on Exit. Duplicate and missing link errors are shown and the
// loop continues; any other error ends the session and is returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := guard(ctx); err != nil {
			return err
		}

		err := s.mainMenu(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			s.out.Success(msgGoodbye)
			return nil
		case errors.Is(err, links.ErrDuplicateKey):
			s.out.Failure(msgDuplicate)
		case errors.Is(err, links.ErrNotFound):
			s.out.Failure(msgNotFound)
		default:
			return err
		}
	}
}

// guard ends the session once ctx is done
func guard(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	return nil
}

func (s *Session) mainMenu(ctx context.Context) error {
	action, err := choose(ctx, s.prompt, labelSelectOption, mainActions)
	if err != nil {
		return err
	}

	switch action {
	case MainCheckStatus:
		return s.checkStatus()
	case MainGetLink:
		return s.getLink(ctx)
	case MainAddLink:
		return s.addLink(ctx)
	case MainSearchLink:
		return s.searchLink(ctx)
	case MainDeleteLink:
		return s.deleteLink(ctx)
	case MainOther:
		return s.otherMenu(ctx)
	case MainExit:
		return errExit
	default:
		return fmt.Errorf("unhandled main menu action %s", action)
	}
}

func (s *Session) checkStatus() error {
	counts, err := s.store.Status()
	if err != nil {
		return err
	}
	s.out.Counts(counts)
	return nil
}

func (s *Session) getLink(ctx context.Context) error {
	link, ok, err := s.store.NextIncomplete()
	if err != nil {
		return err
	}
	if !ok {
		s.out.Failure(msgNoUnsolved)
		return nil
	}

	s.out.Links([]links.Link{link})
	return s.linkMenu(ctx, link.URL, reviewActions)
}

func (s *Session) addLink(ctx context.Context) error {
	urls, err := s.store.ListURLs()
	if err != nil {
		return err
	}
	existing := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		existing[url] = struct{}{}
	}

	url, err := s.prompt.Input(labelEnterLink, helpEnterLink, func(input string) error {
		if input == "" {
			return ErrLinkRequired
		}
		if _, ok := existing[input]; ok {
			return ErrLinkExists
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := guard(ctx); err != nil {
		return err
	}
	if err := s.store.AddLink(url); err != nil {
		return err
	}
	s.out.Success("Successfully added the link: " + url)
	return nil
}

func (s *Session) searchLink(ctx context.Context) error {
	link, ok, err := s.pickLink(ctx)
	if err != nil || !ok {
		return err
	}
	return s.linkMenu(ctx, link.URL, reviewActions)
}

func (s *Session) deleteLink(ctx context.Context) error {
	link, ok, err := s.pickLink(ctx)
	if err != nil || !ok {
		return err
	}
	return s.linkMenu(ctx, link.URL, removeActions)
}

// pickLink lets the user search the stored urls and shows the picked link
func (s *Session) pickLink(ctx context.Context) (links.Link, bool, error) {
	urls, err := s.store.ListURLs()
	if err != nil {
		return links.Link{}, false, err
	}
	if len(urls) == 0 {
		s.out.Failure(msgNoLinks)
		return links.Link{}, false, nil
	}

	i, err := s.prompt.Search(labelSelectLink, urls)
	if err != nil {
		return links.Link{}, false, err
	}
	if err := guard(ctx); err != nil {
		return links.Link{}, false, err
	}
	if i < 0 {
		s.out.Failure(msgNoMatch)
		return links.Link{}, false, nil
	}
	if i >= len(urls) {
		return links.Link{}, false, fmt.Errorf("link %d out of range", i)
	}

	link, err := s.store.Lookup(urls[i])
	if err != nil {
		return links.Link{}, false, err
	}
	s.out.Links([]links.Link{link})
	return link, true, nil
}

func (s *Session) linkMenu(ctx context.Context, url string, options []LinkAction) error {
	action, err := choose(ctx, s.prompt, labelSelectOption, options)
	if err != nil {
		return err
	}

	switch action {
	case LinkMarkComplete:
		if err := guard(ctx); err != nil {
			return err
		}
		if err := s.store.MarkComplete(url); err != nil {
			return err
		}
		s.out.Success(msgMarkedComplete)
	case LinkSkip:
		if err := guard(ctx); err != nil {
			return err
		}
		if err := s.store.SkipLink(url); err != nil {
			return err
		}
		s.out.Success(msgSkipped)
	case LinkDelete:
		if err := guard(ctx); err != nil {
			return err
		}
		if err := s.store.DeleteLink(url); err != nil {
			return err
		}
		s.out.Success(msgDeleted)
	case LinkMainMenu:
	case LinkExit:
		return errExit
	default:
		return fmt.Errorf("unhandled link action %s", action)
	}
	return nil
}

func (s *Session) otherMenu(ctx context.Context) error {
	action, err := choose(ctx, s.prompt, labelSelectOption, otherActions)
	if err != nil {
		return err
	}

	switch action {
	case OtherShowAll:
		all, err := s.store.ListAll()
		if err != nil {
			return err
		}
		s.showLinks(all, msgNoLinks)
	case OtherShowCompleted:
		solved, err := s.store.ListByStatus(models.StatusSolved)
		if err != nil {
			return err
		}
		s.showLinks(solved, msgNoCompleted)
	case OtherShowSkipped:
		skipped, err := s.store.ListByStatus(models.StatusSkipped)
		if err != nil {
			return err
		}
		s.showLinks(skipped, msgNoSkipped)
	case OtherSkippedToIncomplete:
		if err := guard(ctx); err != nil {
			return err
		}
		n, err := s.store.ResetSkipped()
		if err != nil {
			return err
		}
		s.out.Success(fmt.Sprintf("Changed %d Skipped Links To Incomplete Links", n))
	case OtherCompletedToIncomplete:
		if err := guard(ctx); err != nil {
			return err
		}
		n, err := s.store.ResetCompleted()
		if err != nil {
			return err
		}
		s.out.Success(fmt.Sprintf("Changed %d Completed Links To Incomplete Links", n))
	case OtherMainMenu:
	case OtherExit:
		return errExit
	default:
		return fmt.Errorf("unhandled other menu action %s", action)
	}
	return nil
}

func (s *Session) showLinks(items []links.Link, empty string) {
	if len(items) == 0 {
		s.out.Failure(empty)
		return
	}
	s.out.Links(items)
}
