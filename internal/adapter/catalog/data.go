package catalog

import "github.com/seu-repo/partassist/internal/domain"

// seedParts is the built-in catalog used by the memory adapter and by
// the ingest command to populate the database.
var seedParts = []domain.Part{
	{
		PartNumber:       "PS11746337",
		Name:             "Water Inlet Valve",
		ApplianceType:    "refrigerator",
		Price:            64.95,
		Stock:            "in_stock",
		CompatibleModels: []string{"WRS325SDHZ", "WRS588FIHZ", "WRF535SWHZ", "WRX735SDHZ", "GSS25GSHSS"},
		Description:      "Dual-outlet inlet valve feeding the ice maker and water dispenser.",
	},
	{
		PartNumber:       "PS11722167",
		Name:             "Ice Maker Assembly",
		ApplianceType:    "refrigerator",
		Price:            139.89,
		Stock:            "in_stock",
		CompatibleModels: []string{"WRS325SDHZ", "WRF535SWHZ", "WRX735SDBM", "GSS25GSHSS", "GSL25JFXALB"},
		Description:      "Complete icemaker unit with motor module and ejector arms.",
	},
	{
		PartNumber:       "PS11787619",
		Name:             "Water Filter",
		ApplianceType:    "refrigerator",
		Price:            49.99,
		Stock:            "in_stock",
		CompatibleModels: []string{"WRS325SDHZ", "WRS588FIHZ", "WRF535SWHZ", "WRF757SDHZ"},
		Description:      "Push-in water filter, replace every six months.",
	},
	{
		PartNumber:       "PS11705149",
		Name:             "Thermostat",
		ApplianceType:    "refrigerator",
		Price:            72.40,
		Stock:            "backordered",
		CompatibleModels: []string{"WRB322DMBM", "GTS18GTHWW", "GTH18GBDWW"},
		Description:      "Cold control thermostat, mounts behind the temperature dial.",
	},
	{
		PartNumber:       "PS11784756",
		Name:             "Door Gasket",
		ApplianceType:    "refrigerator",
		Price:            85.67,
		Stock:            "in_stock",
		CompatibleModels: []string{"WRS325SDHZ", "WRF535SWHZ", "GTS18GTHWW"},
		Description:      "Magnetic door seal, fits fresh food compartment.",
	},
	{
		PartNumber:       "PS11743427",
		Name:             "Drain Pump",
		ApplianceType:    "dishwasher",
		Price:            86.45,
		Stock:            "in_stock",
		CompatibleModels: []string{"WDT780SAEM1", "WDT750SAHZ", "WDF520PADM", "KDFE104HPS"},
		Description:      "Drain pump and motor assembly, pushes water out through the drain hose.",
	},
	{
		PartNumber:       "PS11763814",
		Name:             "Heating Element",
		ApplianceType:    "dishwasher",
		Price:            47.12,
		Stock:            "in_stock",
		CompatibleModels: []string{"WDT780SAEM1", "WDF520PADM", "MDB4949SHZ", "LDF5545ST"},
		Description:      "Loop-style heating element for wash and dry cycles.",
	},
	{
		PartNumber:       "PS11708155",
		Name:             "Control Board",
		ApplianceType:    "dishwasher",
		Price:            164.95,
		Stock:            "backordered",
		CompatibleModels: []string{"WDT780SAEM1", "WDT750SAHZ", "MDB4949SHZ"},
		Description:      "Main electronic control board, behind the door panel.",
	},
	{
		PartNumber:       "PS11769123",
		Name:             "Spray Arm",
		ApplianceType:    "dishwasher",
		Price:            32.85,
		Stock:            "in_stock",
		CompatibleModels: []string{"WDT780SAEM1", "WDF520PADM", "LDF5545ST", "LDT7808SS"},
		Description:      "Lower spray arm, snaps onto the wash pump hub.",
	},
	{
		PartNumber:       "PS11723171",
		Name:             "Door Latch",
		ApplianceType:    "dishwasher",
		Price:            54.30,
		Stock:            "in_stock",
		CompatibleModels: []string{"WDT780SAEM1", "MDB4949SHZ", "KDFE104HPS"},
		Description:      "Door latch assembly with integrated micro switches.",
	},
}
