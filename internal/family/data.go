package family

import "github.com/dukerupert/familytree/internal/model"

// Page heading shown above the tree.
const (
	Title    = "Семейное Древо"
	Subtitle = "История нашей семьи"
)

// defaultRoot builds the family dataset shipped with the binary.
func defaultRoot() *model.FamilyMember {
	return &model.FamilyMember{
		ID:           "1",
		Name:         "Иван Петрович",
		BirthYear:    "1920",
		DeathYear:    "1995",
		Relationship: "Прадедушка",
		Children: []*model.FamilyMember{
			{
				ID:           "2",
				Name:         "Мария Ивановна",
				BirthYear:    "1945",
				Relationship: "Бабушка",
				Children: []*model.FamilyMember{
					{
						ID:           "4",
						Name:         "Александр Михайлович",
						BirthYear:    "1970",
						Relationship: "Отец",
						Children: []*model.FamilyMember{
							{
								ID:           "6",
								Name:         "Дмитрий Александрович",
								BirthYear:    "1995",
								Relationship: "Я",
							},
							{
								ID:           "7",
								Name:         "Елена Александровна",
								BirthYear:    "1998",
								Relationship: "Сестра",
							},
						},
					},
					{
						ID:           "5",
						Name:         "Ольга Михайловна",
						BirthYear:    "1973",
						Relationship: "Тётя",
					},
				},
			},
			{
				ID:           "3",
				Name:         "Пётр Иванович",
				BirthYear:    "1948",
				DeathYear:    "2010",
				Relationship: "Дедушка",
			},
		},
	}
}

// Default returns the built-in family tree.
func Default() *Tree {
	return New(defaultRoot())
}
