package models

import (
	"reflect"
	"testing"
)

func TestNewUser(t *testing.T) {
	type args struct {
		username       string
		hashedPassword string
	}
	tests := []struct {
		name string
		args args
		want *User
	}{
		{
			name: "Create new user with valid username and digest",
			args: args{
				username:       "testuser",
				hashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
			},
			want: &User{
				ID:             0, // ID is left zero for the database to assign
				Username:       "testuser",
				HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
			},
		},
		{
			name: "Create new user with empty username and digest",
			args: args{
				username:       "",
				hashedPassword: "",
			},
			want: &User{
				ID:             0,
				Username:       "",
				HashedPassword: "",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewUser(tt.args.username, tt.args.hashedPassword); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewUser() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTodo(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  *Todo
	}{
		{
			name:  "Create new todo with title",
			title: "Buy milk",
			want: &Todo{
				ID:        0,
				Title:     "Buy milk",
				Completed: false,
			},
		},
		{
			name:  "Create new todo with empty title",
			title: "",
			want: &Todo{
				ID:        0,
				Title:     "",
				Completed: false,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTodo(tt.title); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewTodo() = %v, want %v", got, tt.want)
			}
		})
	}
}
