package news

import (
	"fmt"
	"strconv"
	"strings"
)

// isTextualTarget reports whether a raw target string carries inline text
// instead of an external url
func isTextualTarget(target string) bool {
	return strings.HasPrefix(target, textScheme)
}

// claimURL registers a url against the repost guard for the configured
// window, owned by the given submission
func (s *Service) claimURL(url string, submissionID int64) error {
	err := s.store.SetEx(keyURL(url), strconv.FormatInt(submissionID, 10), s.cfg.PreventRepostWindow)
	if err != nil {
		return fmt.Errorf("claiming url: %w", err)
	}
	return nil
}

// releaseURL drops a repost-guard claim, used when a submission is
// retargeted away from the url
func (s *Service) releaseURL(url string) error {
	if err := s.store.Del(keyURL(url)); err != nil {
		return fmt.Errorf("releasing url claim: %w", err)
	}
	return nil
}

// FindIDByURL resolves an active repost-guard claim to the owning
// submission id. The boolean reports whether a claim is active; intake
// code consults this before accepting a new submission for the same url.
func (s *Service) FindIDByURL(url string) (int64, bool, error) {
	raw, loaded, err := s.store.GetS(keyURL(url))
	if err != nil {
		return 0, false, fmt.Errorf("reading url claim: %w", err)
	}
	if !loaded {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("url claim holds malformed submission id %q: %w", raw, err)
	}
	return id, true, nil
}
