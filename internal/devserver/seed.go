package devserver

import (
	"fmt"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

func intPtr(v int) *int { return &v }

// Seed fills the store with one beauty salon and one catering business,
// staff, taxes and a small catalog, so the CLI has something to work with
// out of the box. The seeded staff all log in with "changeme".
func Seed(store *Store) error {
	err := store.AddBusiness(models.Business{
		RegistrationNumber: "305111222",
		VatCode:            "LT100011112223",
		Name:               "Bitukai Beauty",
		Location:           "Vilnius",
		Phone:              "+37060000001",
		Email:              "salon@bitukai.lt",
		CurrencyCode:       "EUR",
		Type:               models.BusinessTypeBeauty,
	})
	if err != nil {
		return fmt.Errorf("failed to seed business: %w", err)
	}
	err = store.AddBusiness(models.Business{
		RegistrationNumber: "305333444",
		VatCode:            "LT100033334445",
		Name:               "Bitukai Catering",
		Location:           "Kaunas",
		Phone:              "+37060000002",
		Email:              "kitchen@bitukai.lt",
		CurrencyCode:       "EUR",
		Type:               models.BusinessTypeCatering,
	})
	if err != nil {
		return fmt.Errorf("failed to seed business: %w", err)
	}

	standard := store.CreateTax(models.TaxCreateUpdate{
		Name:        "PVM 21",
		Description: utils.NewNullString("Standard VAT"),
		Percentage:  21,
	})
	reduced := store.CreateTax(models.TaxCreateUpdate{
		Name:        "PVM 9",
		Description: utils.NewNullString("Reduced VAT"),
		Percentage:  9,
	})

	staffSeed := []models.StaffCreate{
		{
			RegistrationNumber: "305111222",
			Status:             models.StaffStatusActive,
			FirstName:          "Ruta",
			LastName:           "Jankauskiene",
			Email:              "ruta@bitukai.lt",
			PhoneNumber:        "+37061111111",
			Role:               models.StaffRoleOwner,
			HireDate:           "2021-03-01",
			Password:           "changeme",
		},
		{
			RegistrationNumber: "305111222",
			Status:             models.StaffStatusActive,
			FirstName:          "Greta",
			LastName:           "Petrauskaite",
			Email:              "greta@bitukai.lt",
			PhoneNumber:        "+37062222222",
			Role:               models.StaffRoleBase,
			HireDate:           "2023-06-15",
			Password:           "changeme",
		},
		{
			RegistrationNumber: "305333444",
			Status:             models.StaffStatusActive,
			FirstName:          "Tomas",
			LastName:           "Kazlauskas",
			Email:              "tomas@bitukai.lt",
			PhoneNumber:        "+37063333333",
			Role:               models.StaffRoleOwner,
			HireDate:           "2020-01-10",
			Password:           "changeme",
		},
	}
	staff := make([]models.Staff, 0, len(staffSeed))
	for _, payload := range staffSeed {
		created, err := store.CreateStaff(payload)
		if err != nil {
			return fmt.Errorf("failed to seed staff: %w", err)
		}
		staff = append(staff, created)
	}

	haircut := store.CreateProduct(models.ProductCreate{
		RegistrationNumber: "305111222",
		Type:               models.ProductTypeService,
		Name:               "Haircut",
		Description:        "Wash, cut and blow-dry",
		BasePrice:          25,
		DurationMinutes:    intPtr(30),
		TaxCode:            standard.ID,
		Status:             true,
	})
	store.CreateProduct(models.ProductCreate{
		RegistrationNumber: "305111222",
		Type:               models.ProductTypeService,
		Name:               "Manicure",
		Description:        "Classic manicure",
		BasePrice:          20,
		DurationMinutes:    intPtr(45),
		TaxCode:            standard.ID,
		Status:             true,
	})
	store.CreateProduct(models.ProductCreate{
		RegistrationNumber: "305333444",
		Type:               models.ProductTypeItem,
		Name:               "Cold sandwich platter",
		Description:        "Serves 6",
		BasePrice:          18.5,
		TaxCode:            reduced.ID,
		Status:             true,
	})
	store.CreateProduct(models.ProductCreate{
		RegistrationNumber: "305333444",
		Type:               models.ProductTypeItem,
		Name:               "Fruit basket",
		Description:        "Seasonal fruit",
		BasePrice:          12,
		TaxCode:            reduced.ID,
		Status:             true,
	})

	for _, member := range staff {
		if member.RegistrationNumber != "305111222" {
			continue
		}
		if _, err := store.LinkProductStaff(haircut.ProductID, models.ProductStaffLink{
			StaffID: member.StaffID,
			Status:  true,
		}); err != nil {
			return fmt.Errorf("failed to seed product staff link: %w", err)
		}
	}

	utils.LogDebug("Dev store seeded", map[string]interface{}{
		"businesses": len(store.ListBusinesses()),
		"staff":      len(staff),
	})
	return nil
}
