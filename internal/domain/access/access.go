// Package access contiene el modelo de autorización: módulos, permisos y la
// función pura que decide si un usuario puede ejecutar una acción sobre un
// módulo. No toca persistencia; opera sobre datos ya cargados.
package access

import (
	"fmt"

	"github.com/jhoicas/Consola-api/internal/domain"
)

// Module es uno de los módulos de negocio de la consola.
type Module string

// Módulos disponibles.
const (
	ModuleVault      Module = "vault"      // almacén de secretos
	ModuleFinancials Module = "financials" // libro de transacciones
	ModuleReporting  Module = "reporting"  // informes
)

// Permission es una acción sobre un módulo.
type Permission string

// Acciones disponibles.
const (
	PermissionCreate Permission = "create"
	PermissionRead   Permission = "read"
	PermissionUpdate Permission = "update"
	PermissionDelete Permission = "delete"
)

// Modules devuelve los módulos en orden estable.
func Modules() []Module {
	return []Module{ModuleVault, ModuleFinancials, ModuleReporting}
}

// Permissions devuelve las acciones en orden estable.
func Permissions() []Permission {
	return []Permission{PermissionCreate, PermissionRead, PermissionUpdate, PermissionDelete}
}

// ParseModule valida un nombre de módulo. Un valor desconocido es un bug del
// llamador y se reporta como ErrInvalidArgument, nunca como un false silencioso.
func ParseModule(s string) (Module, error) {
	switch Module(s) {
	case ModuleVault, ModuleFinancials, ModuleReporting:
		return Module(s), nil
	}
	return "", fmt.Errorf("%w: módulo desconocido %q", domain.ErrInvalidArgument, s)
}

// ParsePermission valida un nombre de acción.
func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case PermissionCreate, PermissionRead, PermissionUpdate, PermissionDelete:
		return Permission(s), nil
	}
	return "", fmt.Errorf("%w: acción desconocida %q", domain.ErrInvalidArgument, s)
}

// PermissionSet mapea cada módulo a sus acciones concedidas.
// Serializa al mismo shape que consume el cliente: {"vault":["read",...],...}.
// Las acciones son un conjunto: sin duplicados, orden irrelevante.
type PermissionSet map[Module][]Permission

// NewPermissionSet crea un set vacío con los tres módulos presentes
// (el cliente espera siempre las tres claves, aunque estén vacías).
func NewPermissionSet() PermissionSet {
	ps := make(PermissionSet, len(Modules()))
	for _, m := range Modules() {
		ps[m] = []Permission{}
	}
	return ps
}

// Has informa si el set concede la acción sobre el módulo.
func (ps PermissionSet) Has(m Module, p Permission) bool {
	for _, granted := range ps[m] {
		if granted == p {
			return true
		}
	}
	return false
}

// Grant agrega la acción al módulo si no estaba ya concedida.
func (ps PermissionSet) Grant(m Module, p Permission) {
	if ps.Has(m, p) {
		return
	}
	ps[m] = append(ps[m], p)
}

// Merge une otro set dentro de este (unión de conjuntos por módulo).
// Ignora módulos o acciones desconocidos: un rol con datos corruptos no debe
// conceder nada fuera del modelo.
func (ps PermissionSet) Merge(other PermissionSet) {
	for m, perms := range other {
		if _, err := ParseModule(string(m)); err != nil {
			continue
		}
		for _, p := range perms {
			if _, err := ParsePermission(string(p)); err != nil {
				continue
			}
			ps.Grant(m, p)
		}
	}
}
