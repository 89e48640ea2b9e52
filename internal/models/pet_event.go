package models

// Pet lifecycle event types.
const (
	PetCreated           = "pet.created"
	PetUpdated           = "pet.updated"
	PetRemoved           = "pet.removed"
	PetVisitScheduled    = "pet.visit_scheduled"
	PetAdoptionConcluded = "pet.adoption_concluded"
)

// PetEvent represents a change in a pet's lifecycle, published for downstream consumers.
type PetEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	PetID     string `json:"pet_id"`    // PetID is the pet the event refers to.
	Type      string `json:"type"`      // Type is one of the Pet* event types.
	ActorID   string `json:"actor_id"`  // ActorID is the user who triggered the change.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the change.
}
