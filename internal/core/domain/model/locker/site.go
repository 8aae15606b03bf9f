package locker

import (
	"errors"
	"fmt"
	"sort"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/pkg/errs"
)

var (
	// ErrSiteIsNotConstructed is returned when a Site instance was not created
	// through the NewSite factory method.
	ErrSiteIsNotConstructed = errors.New("Site must be created via NewSite constructor")

	// ErrDuplicateCompartmentNumber indicates that two compartments within the
	// same site share a compartment number.
	ErrDuplicateCompartmentNumber = errors.New("duplicate compartment number within the same locker site")
)

// Site represents a physical locker installation containing multiple
// compartments. It is the aggregate root for compartment occupancy: every
// claim and release goes through the site so that the availability flag of a
// compartment can never be mutated behind the aggregate's back.
//
// Site follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must have a valid geographic location
//   - Compartment numbers are unique within the site
//   - Can only be created through NewSite or RestoreSite
type Site struct {
	// id is the unique identifier for the site
	id kernel.UUID

	// name is the human-readable site name, unique across sites
	name string

	// location is the geographic position of the installation
	location kernel.Location

	// compartments holds the site's slots in stable compartment-number order
	compartments []*Compartment

	// pendingClaims and pendingReleases record occupancy flips since the
	// aggregate was loaded or last saved. The persistence layer consumes
	// them to write each flip as a conditional per-row update.
	pendingClaims   []string
	pendingReleases []string

	// isConstructed ensures the site was created via a constructor
	isConstructed bool
}

// NewSite creates a new Site aggregate with validation.
// Compartments are sorted into stable compartment-number order and duplicate
// numbers are rejected, mirroring the uniqueness constraint the persistence
// layer enforces on save.
func NewSite(id kernel.UUID, name string, location kernel.Location, compartments []*Compartment) (*Site, error) {
	site := &Site{
		isConstructed: true,
	}

	if err := errors.Join(
		site.setID(id),
		site.setName(name),
		site.setLocation(location),
		site.setCompartments(compartments),
	); err != nil {
		return nil, err
	}

	return site, nil
}

// RestoreSite reconstructs a Site aggregate from persistent storage.
// The same invariants as NewSite apply; occupancy state is carried by the
// restored compartments themselves.
func RestoreSite(id kernel.UUID, name string, location kernel.Location, compartments []*Compartment) (*Site, error) {
	return NewSite(id, name, location, compartments)
}

// Validate ensures the Site instance was properly constructed.
func (s *Site) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSiteIsNotConstructed
	}
	return nil
}

// IsEqual compares two sites by their unique identifiers.
func (s *Site) IsEqual(other *Site) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the site's unique identifier.
func (s *Site) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable site name.
func (s *Site) Name() string {
	return s.name
}

// Location returns the geographic position of the site.
func (s *Site) Location() kernel.Location {
	return s.location
}

// Compartments returns the site's compartments in compartment-number order.
// The returned slice must not be mutated by callers.
func (s *Site) Compartments() []*Compartment {
	return s.compartments
}

// FindCompartment returns the compartment with the given number.
// Returns an ObjectNotFoundError if no such compartment exists in the site.
func (s *Site) FindCompartment(number string) (*Compartment, error) {
	for _, c := range s.compartments {
		if c.number == number {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("compartmentNumber", number)
}

// Available returns the compartments that are currently unoccupied,
// optionally filtered to an exact size. Pass SizeUnknown to list every
// available compartment regardless of size. The result preserves the
// stable compartment-number ordering of the aggregate.
func (s *Site) Available(sizeFilter Size) []*Compartment {
	available := make([]*Compartment, 0, len(s.compartments))
	for _, c := range s.compartments {
		if !c.isAvailable {
			continue
		}
		if sizeFilter != SizeUnknown && c.size != sizeFilter {
			continue
		}
		available = append(available, c)
	}
	return available
}

// Claim marks the compartment with the given number as occupied.
//
// Returns an ObjectNotFoundError if the compartment does not exist and
// ErrCompartmentOccupied if it is already claimed. The aggregate is never
// left half-mutated: a failed claim changes nothing.
func (s *Site) Claim(number string) error {
	c, err := s.FindCompartment(number)
	if err != nil {
		return err
	}
	if err := c.Claim(); err != nil {
		return err
	}

	s.pendingClaims = append(s.pendingClaims, number)
	return nil
}

// Release marks the compartment with the given number as available.
// Releasing an already-available compartment is a no-op success.
// Returns an ObjectNotFoundError if the compartment does not exist.
func (s *Site) Release(number string) error {
	c, err := s.FindCompartment(number)
	if err != nil {
		return err
	}
	if c.isAvailable {
		return nil
	}

	c.Release()
	s.pendingReleases = append(s.pendingReleases, number)
	return nil
}

// TakePendingChanges returns the compartment numbers claimed and released
// since the aggregate was loaded or last saved, then resets both lists.
// A claim must only persist against a row that is still available; handing
// the flips to the repository one by one lets it enforce that condition
// instead of overwriting every occupancy flag wholesale.
func (s *Site) TakePendingChanges() (claimed []string, released []string) {
	claimed, released = s.pendingClaims, s.pendingReleases
	s.pendingClaims, s.pendingReleases = nil, nil
	return claimed, released
}

func (s *Site) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Site) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	s.name = name
	return nil
}

func (s *Site) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *Site) setCompartments(compartments []*Compartment) error {
	seen := make(map[string]struct{}, len(compartments))
	for _, c := range compartments {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, ok := seen[c.number]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateCompartmentNumber, c.number)
		}
		seen[c.number] = struct{}{}
	}

	sorted := make([]*Compartment, len(compartments))
	copy(sorted, compartments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].number < sorted[j].number
	})

	s.compartments = sorted
	return nil
}
