package domain

// Unit представляет пожарно-спасательное подразделение (Engine 1, Truck 3, Rescue 5, Battalion 1)
type Unit struct {
	Name     string  `json:"name" jsonschema:"title=Name,required" jsonschema_description:"Unit display name, e.g., 'Engine 1'"`
	Station  *string `json:"station" jsonschema:"title=Station" jsonschema_description:"Assigned station, e.g., 'Station 1'"`
	UnitType string  `json:"unit_type" jsonschema:"title=Unit Type,required" jsonschema_description:"Type of unit: Engine, Truck, Rescue, Battalion, Squad, etc."`
	Status   string  `json:"status" jsonschema:"title=Status,default=Available" jsonschema_description:"Current status: Available, On Scene, Out of Service, etc."`
	District *string `json:"district" jsonschema:"title=District" jsonschema_description:"District or area of responsibility"`
}

// Member представляет сотрудника департамента и его место в иерархии
type Member struct {
	Name     string  `json:"name" jsonschema:"title=Name,required" jsonschema_description:"Full name"`
	Rank     string  `json:"rank" jsonschema:"title=Rank,required" jsonschema_description:"Rank/Title e.g., Fire Chief, Deputy Chief, Captain, Engineer"`
	Division *string `json:"division" jsonschema:"title=Division" jsonschema_description:"Division/Bureau e.g., Operations, Prevention, Training"`
	Unit     *string `json:"unit" jsonschema:"title=Unit" jsonschema_description:"Assigned unit or station, e.g., 'Engine 1' or 'Station 1'"`
	Phone    *string `json:"phone" jsonschema:"title=Phone" jsonschema_description:"Contact phone"`
	Email    *string `json:"email" jsonschema:"title=Email" jsonschema_description:"Contact email"`
}

// ContactInfo представляет общую контактную и публичную информацию департамента
type ContactInfo struct {
	DepartmentName string   `json:"department_name" jsonschema:"title=Department Name,default=Las Vegas Fire & Rescue" jsonschema_description:"Official department name"`
	NonEmergency   *string  `json:"non_emergency" jsonschema:"title=Non Emergency" jsonschema_description:"Non-emergency phone number"`
	Emergency      string   `json:"emergency" jsonschema:"title=Emergency,default=911" jsonschema_description:"Emergency number"`
	Address        *string  `json:"address" jsonschema:"title=Address" jsonschema_description:"Headquarters address"`
	Website        *string  `json:"website" jsonschema:"title=Website" jsonschema_description:"Official website URL"`
	Email          *string  `json:"email" jsonschema:"title=Email" jsonschema_description:"Public information email"`
	Social         []string `json:"social" jsonschema:"title=Social" jsonschema_description:"List of social links"`
}

// DefaultContactInfo возвращает контактные данные, отдаваемые пока в коллекции нет записей.
// Документ каждый раз создается заново и никогда не сохраняется.
func DefaultContactInfo() Document {
	return Document{
		"department_name": "Las Vegas Fire & Rescue",
		"emergency":       "911",
		"non_emergency":   "(702) 229-2000",
		"address":         "500 N Casino Center Blvd, Las Vegas, NV",
		"website":         "https://www.lasvegasnevada.gov/Residents/Public-Safety/Fire",
		"email":           "lvfrd@lasvegasnevada.gov",
		"social": []any{
			"https://twitter.com/LasVegasFD",
			"https://www.facebook.com/LasVegasFireRescue/",
		},
	}
}
