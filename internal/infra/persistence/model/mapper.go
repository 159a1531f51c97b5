package model

import (
	"lobby/internal/domain/entity"
)

// ToAccountDomain maps a persistence row to the domain entity.
func ToAccountDomain(data *AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Avatar:       data.Avatar,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// FromAccountDomain maps the domain entity to a persistence row.
func FromAccountDomain(data *entity.Account) *AccountModel {
	return &AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Avatar:       data.Avatar,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// ToProfileDomain maps a profile row, with its owner when loaded, to the domain entity.
func ToProfileDomain(data *ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		OwnerID:       data.OwnerID,
		Genre:         data.Genre,
		FavoriteItems: append([]string{}, data.FavoriteItems...),
		Website:       data.Website,
		Location:      data.Location,
		Bio:           data.Bio,
		Social:        entity.Social{},
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	for platform, link := range data.Social {
		if p := entity.SocialPlatform(platform); p.Valid() {
			profile.Social[p] = link
		}
	}
	if data.Owner != nil {
		profile.Owner = ToAccountDomain(data.Owner).Summary()
	}

	return profile
}

// FromProfileDomain maps the domain entity to a persistence row. The owner is not copied.
func FromProfileDomain(data *entity.Profile) *ProfileModel {
	return &ProfileModel{
		OwnerID:       data.OwnerID,
		Genre:         data.Genre,
		FavoriteItems: StringList(append([]string{}, data.FavoriteItems...)),
		Website:       data.Website,
		Location:      data.Location,
		Bio:           data.Bio,
		Social:        FromSocial(data.Social),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// FromSocial converts the domain social map to its stored form.
func FromSocial(social entity.Social) SocialLinks {
	out := SocialLinks{}
	for platform, link := range social {
		out[string(platform)] = link
	}

	return out
}

// PatchColumns returns the profile columns a patch sets, keyed by column name.
// The map is empty when the patch carries no fields.
func PatchColumns(patch *entity.ProfilePatch) map[string]any {
	cols := map[string]any{}
	if patch == nil {
		return cols
	}

	if patch.Genre != nil {
		cols["genre"] = *patch.Genre
	}
	if patch.FavoriteItems != nil {
		cols["favorite_items"] = StringList(patch.FavoriteItems)
	}
	if patch.Website != nil {
		cols["website"] = *patch.Website
	}
	if patch.Location != nil {
		cols["location"] = *patch.Location
	}
	if patch.Bio != nil {
		cols["bio"] = *patch.Bio
	}
	if patch.Social != nil {
		cols["social"] = FromSocial(patch.Social)
	}

	return cols
}
