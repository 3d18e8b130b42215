// AngelaMos | 2026
// dto.go

package trip

type CreateTripInput struct {
	BoatID         string
	Titre          string
	InfosPratiques *string
	TypeSortie     string
	TypeTarif      string
	NbPassagers    int
	PrixEur        float64
}
