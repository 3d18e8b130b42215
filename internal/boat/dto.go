// AngelaMos | 2026
// dto.go

package boat

type CreateBoatInput struct {
	Nom              string
	Description      *string
	Marque           string
	Annee            int
	PhotoURL         *string
	PermisRequis     string
	Type             string
	Equipements      []string
	CautionEur       float64
	CapaciteMax      int
	Couchages        int
	PortAttacheVille string
	Lat              float64
	Lon              float64
	Motorisation     string
	PuissanceCV      int
}
