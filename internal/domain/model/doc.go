// Package model define las entidades del negocio y sus patch structs.
//
// Cada entidad implementa storage.Entity (EntityID). Por cada entidad existe
// un patch struct con campos puntero: en un Update solo se aplican los campos
// no-nil, el resto del registro queda intacto.
//
// Algunos nombres de campo JSON conservan su forma legacy en portugués
// (ej: "vezes_alugado") porque así están serializados los datos existentes.
package model
