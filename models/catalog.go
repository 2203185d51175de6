package models

// Category is a job category with its subcategories, in display order.
type Category struct {
	Name          string
	Subcategories []string
}

// JobCategories lists the categories offered by the job form.
var JobCategories = []Category{
	{Name: "Строительство", Subcategories: []string{"Каменщик", "Кладка", "Электрик", "Сантехник", "Сварщик", "Отделочник", "Плиточник", "Фасадчик", "Монолитчик", "Разнорабочий"}},
	{Name: "Общепит", Subcategories: []string{"Повар", "Официант", "Бармен", "Посудомойщик", "Администратор", "Кассир"}},
	{Name: "Швейный цех", Subcategories: []string{"Швея", "Закройщик", "Упаковщик", "Технолог", "Контролер качества"}},
	{Name: "IT", Subcategories: []string{"Программист", "Дизайнер", "Тестировщик", "Системный администратор"}},
	{Name: "Продажи", Subcategories: []string{"Продавец", "Менеджер", "Консультант", "Кассир"}},
	{Name: "Транспорт", Subcategories: []string{"Водитель", "Курьер", "Экспедитор", "Диспетчер"}},
}

// JobCities lists the cities offered by the job form.
var JobCities = []string{"Бишкек", "Ош", "Талас", "Нарын", "Каракол", "Жалал-Абад", "Чолпон-Ата"}

// Subcategories returns the subcategories of the named category, or nil when
// the category is unknown.
func Subcategories(category string) []string {
	for _, c := range JobCategories {
		if c.Name == category {
			return c.Subcategories
		}
	}
	return nil
}
