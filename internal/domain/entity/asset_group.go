package entity

// AssetGroup група основних засобів згідно з ПКУ ст. 138.3.3 та НП(С)БО 7.
// Визначає рахунки обліку (10х) та зносу (13х) для проводок.
type AssetGroup struct {
	ID                  string
	Code                string // унікальний
	Name                string
	MinUsefulLifeMonths *int   // мінімальний строк згідно з ПКУ; nil = не обмежено
	AccountNumber       string // рахунок обліку з Плану рахунків (10х)
	DepreciationAccount string // рахунок зносу (13х), типово 131
}
