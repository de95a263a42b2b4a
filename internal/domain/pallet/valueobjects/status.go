package valueobjects

type PalletStatus string

const (
	StatusOpen     PalletStatus = "open"
	StatusReleased PalletStatus = "released"
)

var validPalletStatuses = map[PalletStatus]bool{
	StatusOpen:     true,
	StatusReleased: true,
}

// Released is terminal; the only legal transition is open -> released.
var palletStatusTransitions = map[PalletStatus][]PalletStatus{
	StatusOpen: {
		StatusReleased,
	},
	StatusReleased: {},
}

func (ps PalletStatus) String() string {
	return string(ps)
}

func (ps PalletStatus) IsValid() bool {
	return validPalletStatuses[ps]
}

func (ps PalletStatus) CanTransitionTo(newStatus PalletStatus) bool {
	allowedTransitions, ok := palletStatusTransitions[ps]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ps PalletStatus) IsOpen() bool {
	return ps == StatusOpen
}

func (ps PalletStatus) IsReleased() bool {
	return ps == StatusReleased
}
