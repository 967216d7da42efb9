package repository

import "petshop-api/internal/infra"

// translate turns a constraint violation into the domain error it stands for.
func translate(err error, byConstraint map[string]error) error {
	if d, ok := byConstraint[infra.ConstraintOf(err)]; ok {
		return d
	}
	return err
}
