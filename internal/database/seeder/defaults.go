package seeder

func Defaults() ([]Seeder, error) {
	c, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return []Seeder{
		JobsSeeder{Jobs: c.Jobs},
		ResourcesSeeder{Resources: c.Resources},
	}, nil
}
