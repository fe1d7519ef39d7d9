package placeholder

import (
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

type userDTO struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Website  string     `json:"website"`
	Address  addressDTO `json:"address"`
	Company  companyDTO `json:"company"`
}

type addressDTO struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

type companyDTO struct {
	Name string `json:"name"`
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID:    dto.ID,
		Liked: false,
		UserUpdate: model.UserUpdate{
			Name:     dto.Name,
			Username: dto.Username,
			Email:    dto.Email,
			Phone:    dto.Phone,
			Website:  dto.Website,
			Address: model.Address{
				Street:  dto.Address.Street,
				Suite:   dto.Address.Suite,
				City:    dto.Address.City,
				Zipcode: dto.Address.Zipcode,
			},
			Company: model.Company{
				Name: dto.Company.Name,
			},
		},
	}
}
